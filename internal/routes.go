package internal

import (
	"clarity/internal/controllers"
	"clarity/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/config", http.HandlerFunc(apiController.GetConfig))

	routers.Get("/articles", http.HandlerFunc(apiController.ListArticles))
	routers.Get("/article", http.HandlerFunc(apiController.GetArticle))
	routers.Get("/tags", http.HandlerFunc(apiController.GetTags))
	routers.Get("/content", http.HandlerFunc(apiController.GetContent))
	routers.Post("/articles", http.HandlerFunc(apiController.Publish))
	routers.Post("/articles/verify", http.HandlerFunc(apiController.Verify))
	routers.Post("/articles/flag", http.HandlerFunc(apiController.Flag))

	routers.Get("/authors", http.HandlerFunc(apiController.ListAuthors))
	routers.Get("/author", http.HandlerFunc(apiController.GetAuthor))
	routers.Get("/author/exists", http.HandlerFunc(apiController.AuthorExists))
	routers.Get("/authors/delegation", http.HandlerFunc(apiController.DelegationChain))
	routers.Post("/authors", http.HandlerFunc(apiController.CreateAuthor))
	routers.Post("/authors/verify-zk", http.HandlerFunc(apiController.VerifyZk))
	routers.Post("/authors/delegate", http.HandlerFunc(apiController.Delegate))

	routers.Get("/proposals", http.HandlerFunc(apiController.ListProposals))
	routers.Get("/proposal", http.HandlerFunc(apiController.GetProposal))
	routers.Post("/proposals", http.HandlerFunc(apiController.CreateProposal))
	routers.Post("/votes", http.HandlerFunc(apiController.CastVote))

	routers.Get("/drafts", http.HandlerFunc(apiController.ListDrafts))
	routers.Post("/drafts", http.HandlerFunc(apiController.SaveDraft))
	routers.Post("/drafts/delete", http.HandlerFunc(apiController.DeleteDraft))

	routers.Get("/subscriptions", http.HandlerFunc(apiController.ListSubscriptions))
	routers.Post("/subscriptions", http.HandlerFunc(apiController.Subscribe))
	routers.Post("/subscriptions/cancel", http.HandlerFunc(apiController.Unsubscribe))
	routers.Post("/keeper/subscriptions", http.HandlerFunc(apiController.RunKeeper))

	routers.Post("/donations", http.HandlerFunc(apiController.Donate))
	routers.Post("/protocol-donations", http.HandlerFunc(apiController.DonateToProtocol))
	return routers
}

// NewApiMux mounts every route on a mux keyed by method and path, so one path
// can carry both a GET and a POST handler.
func NewApiMux(router providers.RouterProviderInterface) *http.ServeMux {
	mux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		mux.Handle(route.Pattern(), route.Handler)
	}
	return mux
}
