package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"socialapi/internal/http/middleware"
	"socialapi/internal/service"
)

// Deps carries what the routes need. Every service is required.
type Deps struct {
	DB          *sql.DB
	Tokens      middleware.TokenParser
	Members     service.MemberService
	Posts       service.PostService
	Comments    service.CommentService
	Follows     service.FollowService
	Friendships service.FriendshipService
	Collections service.CollectionService
	Images      service.ImageService
	Events      service.MemberEventService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Static segments are registered before their :id siblings.
func RegisterRoutes(app *fiber.App, d Deps) {
	auth := middleware.Auth(d.Tokens)

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Post("/auth/login", Login(d.Members))

	app.Post("/members", RegisterMember(d.Members))
	app.Get("/members/activate", ActivateMember(d.Members))
	app.Get("/members/me", auth, GetMe(d.Members))
	app.Patch("/members/me", auth, UpdateMe(d.Members))
	app.Delete("/members/me", auth, WithdrawMe(d.Members))
	app.Get("/members/:id", GetMember(d.Members))
	app.Get("/members/:id/posts", ListMemberPosts(d.Posts))

	app.Post("/members/:id/follow", auth, FollowMember(d.Follows))
	app.Delete("/members/:id/follow", auth, UnfollowMember(d.Follows))
	app.Get("/members/:id/followers", ListFollowers(d.Follows))
	app.Get("/members/:id/followings", ListFollowings(d.Follows))
	app.Get("/members/:id/follow-counts", FollowCounts(d.Follows))

	app.Get("/members/:id/friends", ListFriends(d.Friendships))
	app.Get("/members/:id/friends/count", CountFriends(d.Friendships))
	app.Post("/friendships", auth, RequestFriendship(d.Friendships))
	app.Get("/friendships/requests", auth, ListFriendRequests(d.Friendships))
	app.Post("/friendships/:id/accept", auth, AcceptFriendship(d.Friendships))
	app.Post("/friendships/:id/reject", auth, RejectFriendship(d.Friendships))
	app.Delete("/friendships/:id", auth, DeleteFriendship(d.Friendships))

	app.Get("/feed", auth, Feed(d.Posts))
	app.Post("/posts", auth, CreatePost(d.Posts))
	app.Get("/posts/:id", GetPost(d.Posts))
	app.Patch("/posts/:id", auth, UpdatePost(d.Posts))
	app.Delete("/posts/:id", auth, DeletePost(d.Posts))
	app.Post("/posts/:id/like", auth, ToggleLike(d.Posts))
	app.Get("/posts/:id/images/carousel", ImageCarousel(d.Images))

	app.Post("/posts/:id/comments", auth, CreateComment(d.Comments))
	app.Get("/posts/:id/comments", ListComments(d.Comments))
	app.Patch("/comments/:id", auth, UpdateComment(d.Comments))
	app.Delete("/comments/:id", auth, DeleteComment(d.Comments))

	app.Post("/collections", auth, CreateCollection(d.Collections))
	app.Get("/collections", auth, ListCollections(d.Collections))
	app.Patch("/collections/:id", auth, RenameCollection(d.Collections))
	app.Delete("/collections/:id", auth, DeleteCollection(d.Collections))
	app.Get("/collections/:id/posts", auth, ListCollectionPosts(d.Collections))
	app.Post("/collections/:id/posts/:postId", auth, AddCollectionPost(d.Collections))
	app.Delete("/collections/:id/posts/:postId", auth, RemoveCollectionPost(d.Collections))

	app.Post("/images", auth, UploadImage(d.Images))
	app.Get("/images/:id", GetImage(d.Images))
	app.Get("/images/:id/raw", OpenImage(d.Images))
	app.Delete("/images/:id", auth, DeleteImage(d.Images))

	app.Get("/events", auth, ListEvents(d.Events))
	app.Get("/events/unread-count", auth, UnreadEventCount(d.Events))
	app.Get("/events/fragment", auth, EventsFragment(d.Events))
	app.Post("/events/:id/read", auth, MarkEventRead(d.Events))
}
