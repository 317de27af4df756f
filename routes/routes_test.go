package routes

import (
	"testing"

	"linkhive/ratelim"

	"github.com/julienschmidt/httprouter"
)

// Registering every route table on one router catches httprouter path
// conflicts, which panic at registration time.
func buildRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("route registration panicked: %v", r)
		}
	}()

	router := httprouter.New()
	rl := ratelim.NewRateLimiter()
	AddAuthRoutes(router, rl)
	AddSocialRoutes(router, rl)
	AddProfileRoutes(router, rl)
	AddMediaRoutes(router, rl)
	AddStaticRoutes(router)
	return router
}

func TestRoutesRegisterWithoutConflicts(t *testing.T) {
	buildRouter(t)
}

func TestSocialRoutesResolve(t *testing.T) {
	router := buildRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/social"},
		{"POST", "/api/social/u1"},
		{"PUT", "/api/social/post/u1/p1/like"},
		{"PUT", "/api/social/post/u1/p1/comment"},
		{"PUT", "/api/social/post/u1/p1/edit"},
		{"GET", "/api/social/connections/u1"},
		{"PUT", "/api/social/connections/u1/addConnection"},
		{"PUT", "/api/social/connections/u1/removeConnection"},
		{"GET", "/api/social/explore"},
		{"GET", "/api/social/explore/golang"},
		{"PUT", "/api/social/explore"},
		{"PUT", "/api/social/explore/golang"},
		{"POST", "/api/auth/register"},
		{"POST", "/api/auth/login"},
		{"GET", "/api/profile/u1"},
		{"POST", "/api/media/upload"},
	}

	for _, tc := range cases {
		handle, _, _ := router.Lookup(tc.method, tc.path)
		if handle == nil {
			t.Errorf("%s %s is not routed", tc.method, tc.path)
		}
	}
}

func TestParamsExtracted(t *testing.T) {
	router := buildRouter(t)

	_, params, _ := router.Lookup("PUT", "/api/social/post/u9/p42/like")
	if params.ByName("userId") != "u9" || params.ByName("postId") != "p42" {
		t.Fatalf("unexpected params: %+v", params)
	}

	_, params, _ = router.Lookup("GET", "/api/social/explore/hiring")
	if params.ByName("postTag") != "hiring" {
		t.Fatalf("unexpected params: %+v", params)
	}
}
