package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/pranavk/papertrade"
)

// News renders search results as article cards. Articles without a
// description get a placeholder, matching the original card layout.
func News(query string, articles []papertrade.Article) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("News: " + query)

	if len(articles) == 0 {
		doc.PlainText("No results found. Try a different keyword.")
		return doc.String()
	}

	for _, a := range articles {
		doc.H2(a.Title)
		desc := a.Description
		if desc == "" {
			desc = "No description available."
		}
		doc.PlainText(desc)
		doc.PlainText("[Read more](" + a.URL + ")")
	}

	return doc.String()
}
