// Method table, SMD and Invoke for BlogService in the layout zenrpc generates. Keep in
// step with the methods in blog.go.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	BlogService struct{ Feed, Category, Profile, Post, Categories string }
}{
	BlogService: struct{ Feed, Category, Profile, Post, Categories string }{
		Feed:       "feed",
		Category:   "category",
		Profile:    "profile",
		Post:       "post",
		Categories: "categories",
	},
}

func (BlogService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"Feed": {
				Description: `Feed returns a page of the public feed, newest first.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "page",
						Optional:    true,
						Description: `page number (1-based)`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of posts`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					404: "page not found",
					500: "internal server error",
				},
			},
			"Category": {
				Description: `Category returns public posts of a published category.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "slug",
						Description: `category slug`,
						Type:        smd.String,
					},
					{
						Name:        "page",
						Optional:    true,
						Description: `page number (1-based)`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `category with a page of posts`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					404: "category or page not found",
					500: "internal server error",
				},
			},
			"Profile": {
				Description: `Profile returns the posts of a user. The owner also sees unpublished posts.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "username",
						Description: `profile owner`,
						Type:        smd.String,
					},
					{
						Name:        "page",
						Optional:    true,
						Description: `page number (1-based)`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `profile with a page of posts`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					404: "user or page not found",
					500: "internal server error",
				},
			},
			"Post": {
				Description: `Post returns a single post with its comments.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "id",
						Description: `post id`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `post with comments`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "post not found",
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories returns the published categories.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Optional:    true,
					Type:        smd.Array,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s BlogService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.BlogService.Feed:
		var args = struct {
			Page *int `json:"page"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"page"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		//zenrpc:page=1 page number (1-based)
		if args.Page == nil {
			var v int = 1
			args.Page = &v
		}

		resp.Set(s.Feed(ctx, args.Page))

	case RPC.BlogService.Category:
		var args = struct {
			Slug string `json:"slug"`
			Page *int   `json:"page"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"slug", "page"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		//zenrpc:page=1 page number (1-based)
		if args.Page == nil {
			var v int = 1
			args.Page = &v
		}

		resp.Set(s.Category(ctx, args.Slug, args.Page))

	case RPC.BlogService.Profile:
		var args = struct {
			Username string `json:"username"`
			Page     *int   `json:"page"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"username", "page"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		//zenrpc:page=1 page number (1-based)
		if args.Page == nil {
			var v int = 1
			args.Page = &v
		}

		resp.Set(s.Profile(ctx, args.Username, args.Page))

	case RPC.BlogService.Post:
		var args = struct {
			Id int `json:"id"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Post(ctx, args.Id))

	case RPC.BlogService.Categories:
		resp.Set(s.Categories(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
