// 针对运行中的实例做一次端到端巡检：
// 建文章、发评论、删评论、订阅、退订、删文章，可选地调用 AI 建议接口。
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

var verbose bool

// scenario 封装一次巡检过程中共享的资源。
type scenario struct {
	client *http.Client
	base   string
}

func banner(title string) {
	log.Printf("\n=== %s ===", title)
}

func step(format string, args ...interface{}) {
	log.Printf(" • "+format, args...)
}

func main() {
	var (
		base   string
		withAI bool
	)
	flag.StringVar(&base, "base", "http://127.0.0.1:5000", "base URL of a running instance")
	flag.BoolVar(&withAI, "ai", false, "also exercise /api/ai-generate (requires a configured API key)")
	flag.BoolVar(&verbose, "v", false, "dump response bodies")
	flag.Parse()

	s := &scenario{client: &http.Client{Timeout: 30 * time.Second}, base: base}

	banner("posts")
	post := s.createPost()
	step("created post %s", post["id"])
	s.listPostsContains(post["id"].(string))
	step("post visible in listing")

	banner("comments")
	comment := s.addComment(post["id"].(string))
	step("added comment %s", comment["id"])
	s.request(http.MethodDelete, fmt.Sprintf("/api/posts/%s/comments/%s", post["id"], comment["id"]), nil, http.StatusOK)
	step("comment deleted")
	// 未命中的评论 id 也应返回成功（历史行为）
	s.request(http.MethodDelete, fmt.Sprintf("/api/posts/%s/comments/%s", post["id"], "0123456789abcdef01234567"), nil, http.StatusOK)
	step("unmatched comment id still succeeds")

	banner("subscribers")
	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixNano())
	s.request(http.MethodPost, "/api/subscribe", map[string]string{"email": email}, http.StatusCreated)
	step("subscribed %s", email)
	s.request(http.MethodPost, "/api/subscribe", map[string]string{"email": email}, http.StatusConflict)
	step("duplicate subscription rejected with 409")
	subID := s.findSubscriberID(email)
	s.request(http.MethodDelete, "/api/subscribers/"+subID, nil, http.StatusOK)
	step("unsubscribed %s", subID)

	banner("cleanup")
	s.request(http.MethodDelete, "/api/posts/"+post["id"].(string), nil, http.StatusOK)
	step("post deleted")

	if withAI {
		banner("ai suggestions")
		body := s.request(http.MethodPost, "/api/ai-generate", map[string]string{"prompt": "sustainable gardening"}, http.StatusOK)
		var payload map[string]json.RawMessage
		if err := json.Unmarshal(body, &payload); err != nil {
			log.Fatalf("ai payload not a json object: %v", err)
		}
		step("suggestion payload has %d keys", len(payload))
	}

	banner("done")
}

// request 发送一次请求并校验状态码，返回响应体。
func (s *scenario) request(method, path string, body interface{}, wantStatus int) []byte {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.base+path, rd)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if verbose {
		log.Printf("   %s %s → %d %s", method, path, resp.StatusCode, string(respBody))
	}
	if resp.StatusCode != wantStatus {
		log.Fatalf("%s %s: want status %d, got %d (%s)", method, path, wantStatus, resp.StatusCode, string(respBody))
	}
	return respBody
}

func (s *scenario) createPost() map[string]interface{} {
	body := s.request(http.MethodPost, "/api/posts", map[string]string{
		"title":    "Smoke check post",
		"subtitle": "written by cmd/smoke",
		"content":  "This post is created and removed by the smoke checker.",
		"category": "ops",
		"author":   "smoke",
		"email":    "smoke@example.com",
	}, http.StatusCreated)
	var post map[string]interface{}
	if err := json.Unmarshal(body, &post); err != nil {
		log.Fatalf("decode created post: %v", err)
	}
	if post["id"] == nil {
		log.Fatalf("created post has no id: %s", string(body))
	}
	return post
}

func (s *scenario) addComment(postID string) map[string]interface{} {
	body := s.request(http.MethodPost, "/api/posts/"+postID+"/comments",
		map[string]string{"author": "smoke", "content": "first!"}, http.StatusCreated)
	var comment map[string]interface{}
	if err := json.Unmarshal(body, &comment); err != nil {
		log.Fatalf("decode created comment: %v", err)
	}
	return comment
}

func (s *scenario) listPostsContains(id string) {
	body := s.request(http.MethodGet, "/api/posts", nil, http.StatusOK)
	var posts []map[string]interface{}
	if err := json.Unmarshal(body, &posts); err != nil {
		log.Fatalf("decode posts: %v", err)
	}
	for _, p := range posts {
		if p["id"] == id {
			return
		}
	}
	log.Fatalf("post %s not present in listing", id)
}

func (s *scenario) findSubscriberID(email string) string {
	body := s.request(http.MethodGet, "/api/subscribers", nil, http.StatusOK)
	var subs []map[string]interface{}
	if err := json.Unmarshal(body, &subs); err != nil {
		log.Fatalf("decode subscribers: %v", err)
	}
	for _, sub := range subs {
		if sub["email"] == email {
			if id, ok := sub["id"].(string); ok {
				return id
			}
		}
	}
	log.Fatalf("subscriber %s not present in listing", email)
	return ""
}
