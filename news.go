package papertrade

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

const newsapi_api_key = "NEWSAPI_KEY"

var newsApiFlag = flag.String("news-api-key", "", "NewsAPI key to use for searching articles.\n If missing it will read the environment variable \""+newsapi_api_key+"\". You can get one at https://newsapi.org/")

// NewsAPIKey returns the configured NewsAPI key, preferring the flag over
// the environment variable.
func NewsAPIKey() string {
	if *newsApiFlag == "" {
		*newsApiFlag = os.Getenv(newsapi_api_key)
	}
	return *newsApiFlag
}

// Article is one news search result.
type Article struct {
	Title       string
	Description string
	ImageURL    string
	URL         string
}

// NewsClient searches news articles through the NewsAPI "everything"
// endpoint. It is an external collaborator: a failing search never affects
// session state, the caller shows a fallback message instead.
type NewsClient struct {
	// BaseURL of the service, overridable in tests.
	BaseURL string
	// Client used for requests; defaults to the daily-cached client.
	Client *http.Client
	key    string
}

// NewNewsClient returns a client authenticated with the given API key.
func NewNewsClient(key string) *NewsClient {
	return &NewsClient{
		BaseURL: "https://newsapi.org",
		Client:  daily(),
		key:     key,
	}
}

// Search returns the articles matching query, dropping every article
// without an image so the results are always displayable as cards.
func (c *NewsClient) Search(ctx context.Context, query string) ([]Article, error) {
	if query == "" {
		return nil, fmt.Errorf("search term is empty")
	}

	addr := c.BaseURL + "/v2/everything?" + url.Values{
		"q":      {query},
		"apiKey": {c.key},
	}.Encode()

	var jobj any
	if err := jwget(ctx, c.Client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error searching news for %q: %w", query, err)
	}

	if status, err := jsonpath.Get("$.status", jobj); err != nil || status != "ok" {
		// the API reports failures with a 200 status and a message field
		msg, _ := jsonpath.Get("$.message", jobj)
		return nil, fmt.Errorf("news service rejected query %q: %v", query, msg)
	}

	jarticles, err := jsonpath.Get("$.articles", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing news response for %q: %w", query, err)
	}
	jlist, ok := jarticles.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing news response for %q: articles is not a list", query)
	}

	var articles []Article
	for _, item := range jlist {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		a := Article{
			Title:       str(fields["title"]),
			Description: str(fields["description"]),
			ImageURL:    str(fields["urlToImage"]),
			URL:         str(fields["url"]),
		}
		// skip articles without images, they cannot be rendered as cards
		if a.ImageURL == "" {
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// str reads a JSON value as a string, tolerating null and absent fields.
func str(v any) string {
	s, _ := v.(string)
	return s
}
