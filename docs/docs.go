// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/auth/login": {
			"post": {
				"tags": [
					"members"
				],
				"summary": "Log in and receive an access token",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/LoginResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/LoginRequest"
						}
					}
				]
			}
		},
		"/members": {
			"post": {
				"tags": [
					"members"
				],
				"summary": "Register a member",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Member"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/RegisterRequest"
						}
					}
				]
			}
		},
		"/members/activate": {
			"get": {
				"tags": [
					"members"
				],
				"summary": "Activate a member with the emailed token",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Member"
						}
					}
				},
				"parameters": [
					{
						"name": "token",
						"in": "query",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/members/me": {
			"get": {
				"tags": [
					"members"
				],
				"summary": "Get the caller's profile",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Member"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"members"
				],
				"summary": "Update the caller's profile",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Member"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ProfileRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"members"
				],
				"summary": "Withdraw the caller's account",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/members/{id}": {
			"get": {
				"tags": [
					"members"
				],
				"summary": "Get a member profile",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Member"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			}
		},
		"/members/{id}/posts": {
			"get": {
				"tags": [
					"posts"
				],
				"summary": "List a member's posts",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PostList"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"default": 10
					},
					{
						"name": "offset",
						"in": "query",
						"type": "integer",
						"default": 0
					}
				]
			}
		},
		"/members/{id}/follow": {
			"post": {
				"tags": [
					"follows"
				],
				"summary": "Follow a member",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Follow"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"follows"
				],
				"summary": "Unfollow a member",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/members/{id}/followers": {
			"get": {
				"tags": [
					"follows"
				],
				"summary": "List followers",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/FollowList"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"default": 10
					},
					{
						"name": "offset",
						"in": "query",
						"type": "integer",
						"default": 0
					}
				]
			}
		},
		"/members/{id}/followings": {
			"get": {
				"tags": [
					"follows"
				],
				"summary": "List followings",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/FollowList"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"default": 10
					},
					{
						"name": "offset",
						"in": "query",
						"type": "integer",
						"default": 0
					}
				]
			}
		},
		"/members/{id}/follow-counts": {
			"get": {
				"tags": [
					"follows"
				],
				"summary": "Follower and following counts",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/FollowCounts"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			}
		},
		"/members/{id}/friends": {
			"get": {
				"tags": [
					"friendships"
				],
				"summary": "List friends",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/FriendList"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"default": 10
					},
					{
						"name": "offset",
						"in": "query",
						"type": "integer",
						"default": 0
					}
				]
			}
		},
		"/members/{id}/friends/count": {
			"get": {
				"tags": [
					"friendships"
				],
				"summary": "Count friends",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Count"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			}
		},
		"/friendships": {
			"post": {
				"tags": [
					"friendships"
				],
				"summary": "Send a friend request",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Friendship"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/FriendRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/friendships/requests": {
			"get": {
				"tags": [
					"friendships"
				],
				"summary": "List received friend requests",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/FriendshipList"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"default": 10
					},
					{
						"name": "offset",
						"in": "query",
						"type": "integer",
						"default": 0
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/friendships/{id}/accept": {
			"post": {
				"tags": [
					"friendships"
				],
				"summary": "Accept a friend request",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Friendship"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/friendships/{id}/reject": {
			"post": {
				"tags": [
					"friendships"
				],
				"summary": "Reject a friend request",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Friendship"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/friendships/{id}": {
			"delete": {
				"tags": [
					"friendships"
				],
				"summary": "Delete a friendship",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/feed": {
			"get": {
				"tags": [
					"posts"
				],
				"summary": "The caller's feed",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PostList"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"default": 10
					},
					{
						"name": "offset",
						"in": "query",
						"type": "integer",
						"default": 0
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/posts": {
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Create a post",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Post"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/PostRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/posts/{id}": {
			"get": {
				"tags": [
					"posts"
				],
				"summary": "Get a post with likes and images",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PostView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			},
			"patch": {
				"tags": [
					"posts"
				],
				"summary": "Edit a post",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Post"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ContentRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"posts"
				],
				"summary": "Delete a post",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/posts/{id}/like": {
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Toggle the caller's like",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/LikeResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/posts/{id}/images/carousel": {
			"get": {
				"tags": [
					"images"
				],
				"summary": "Image carousel HTML fragment",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"produces": [
					"text/html"
				]
			}
		},
		"/posts/{id}/comments": {
			"post": {
				"tags": [
					"comments"
				],
				"summary": "Comment on a post",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Comment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ContentRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"comments"
				],
				"summary": "List a post's comments",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/CommentList"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"default": 10
					},
					{
						"name": "offset",
						"in": "query",
						"type": "integer",
						"default": 0
					}
				]
			}
		},
		"/comments/{id}": {
			"patch": {
				"tags": [
					"comments"
				],
				"summary": "Edit a comment",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Comment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ContentRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"comments"
				],
				"summary": "Delete a comment",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/collections": {
			"post": {
				"tags": [
					"collections"
				],
				"summary": "Create a collection",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Collection"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CollectionRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"collections"
				],
				"summary": "List the caller's collections",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/CollectionList"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/collections/{id}": {
			"patch": {
				"tags": [
					"collections"
				],
				"summary": "Rename a collection",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Collection"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CollectionRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"collections"
				],
				"summary": "Delete a collection",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/collections/{id}/posts": {
			"get": {
				"tags": [
					"collections"
				],
				"summary": "List posts in a collection",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/PostList"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"default": 10
					},
					{
						"name": "offset",
						"in": "query",
						"type": "integer",
						"default": 0
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/collections/{id}/posts/{postId}": {
			"post": {
				"tags": [
					"collections"
				],
				"summary": "Add a post to a collection",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "postId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"collections"
				],
				"summary": "Remove a post from a collection",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "postId",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/images": {
			"post": {
				"tags": [
					"images"
				],
				"summary": "Upload an image (multipart field file)",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Image"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"name": "file",
						"in": "formData",
						"required": true,
						"type": "file"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/images/{id}": {
			"get": {
				"tags": [
					"images"
				],
				"summary": "Get image metadata with a presigned URL",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Image"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			},
			"delete": {
				"tags": [
					"images"
				],
				"summary": "Delete an uploaded image",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/images/{id}/raw": {
			"get": {
				"tags": [
					"images"
				],
				"summary": "Stream the image bytes",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			}
		},
		"/events": {
			"get": {
				"tags": [
					"events"
				],
				"summary": "List the caller's notifications",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/EventList"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "limit",
						"in": "query",
						"type": "integer",
						"default": 10
					},
					{
						"name": "offset",
						"in": "query",
						"type": "integer",
						"default": 0
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/events/unread-count": {
			"get": {
				"tags": [
					"events"
				],
				"summary": "Count unread notifications",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Count"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/events/fragment": {
			"get": {
				"tags": [
					"events"
				],
				"summary": "Notifications HTML fragment",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"produces": [
					"text/html"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/events/{id}/read": {
			"post": {
				"tags": [
					"events"
				],
				"summary": "Mark a notification read",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Event"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/health": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Readiness (database ping)",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/healthz": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Liveness",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		}
	},
	"definitions": {
		"Error": {
			"type": "object",
			"properties": {
				"request_id": {
					"type": "string"
				},
				"error": {
					"type": "object",
					"properties": {
						"code": {
							"type": "string"
						},
						"message": {
							"type": "string"
						}
					}
				}
			}
		},
		"RegisterRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"nickname": {
					"type": "string"
				}
			}
		},
		"LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"ProfileRequest": {
			"type": "object",
			"properties": {
				"nickname": {
					"type": "string"
				},
				"introduction": {
					"type": "string"
				},
				"profile_image_url": {
					"type": "string"
				}
			}
		},
		"Member": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"email": {
					"type": "string"
				},
				"nickname": {
					"type": "string"
				},
				"introduction": {
					"type": "string"
				},
				"profile_image_url": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"LoginResult": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time"
				},
				"member": {
					"$ref": "#/definitions/Member"
				}
			}
		},
		"Follow": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"follower_id": {
					"type": "integer"
				},
				"follower_nickname": {
					"type": "string"
				},
				"follower_profile_image_url": {
					"type": "string"
				},
				"followee_id": {
					"type": "integer"
				},
				"followee_nickname": {
					"type": "string"
				},
				"followee_profile_image_url": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"FollowList": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Follow"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"FollowCounts": {
			"type": "object",
			"properties": {
				"followers": {
					"type": "integer"
				},
				"followings": {
					"type": "integer"
				}
			}
		},
		"FriendRequest": {
			"type": "object",
			"properties": {
				"addressee_id": {
					"type": "integer"
				}
			}
		},
		"Friendship": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"requester_id": {
					"type": "integer"
				},
				"requester_nickname": {
					"type": "string"
				},
				"addressee_id": {
					"type": "integer"
				},
				"addressee_nickname": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"FriendshipList": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Friendship"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"Friend": {
			"type": "object",
			"properties": {
				"friendship_id": {
					"type": "integer"
				},
				"member_id": {
					"type": "integer"
				},
				"nickname": {
					"type": "string"
				},
				"profile_image_url": {
					"type": "string"
				},
				"since": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"FriendList": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Friend"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"Count": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				}
			}
		},
		"PostRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				},
				"image_ids": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				}
			}
		},
		"ContentRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				}
			}
		},
		"Post": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"writer_id": {
					"type": "integer"
				},
				"writer_nickname": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"PostList": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Post"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"PostView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"writer_id": {
					"type": "integer"
				},
				"writer_nickname": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"like_count": {
					"type": "integer"
				},
				"images": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Image"
					}
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"LikeResult": {
			"type": "object",
			"properties": {
				"liked": {
					"type": "boolean"
				},
				"like_count": {
					"type": "integer"
				}
			}
		},
		"Comment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"post_id": {
					"type": "integer"
				},
				"writer_id": {
					"type": "integer"
				},
				"writer_nickname": {
					"type": "string"
				},
				"writer_profile_image_url": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"CommentList": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Comment"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"CollectionRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				}
			}
		},
		"Collection": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"member_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"CollectionList": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Collection"
					}
				}
			}
		},
		"Image": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"uploader_id": {
					"type": "integer"
				},
				"post_id": {
					"type": "integer"
				},
				"storage_path": {
					"type": "string"
				},
				"content_type": {
					"type": "string"
				},
				"size": {
					"type": "integer"
				},
				"url": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"Event": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"member_id": {
					"type": "integer"
				},
				"type": {
					"type": "string"
				},
				"actor_id": {
					"type": "integer"
				},
				"actor_nickname": {
					"type": "string"
				},
				"target_id": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				},
				"read": {
					"type": "boolean"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"EventList": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/Event"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"Social API",
	Description:	  "Members, posts, comments, follows, friendships, collections, images and notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
