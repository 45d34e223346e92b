package jobs

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxIngestDescription caps how much page text is kept as the description.
const maxIngestDescription = 2000

// ExtractListing parses a job-posting HTML page into a Listing. It looks for
// the usual structured hints first (OpenGraph metadata, heading tags) and
// falls back to page text for the description. Title is the only required
// field; pages without a recognizable title are rejected.
func ExtractListing(htmlContent string) (*Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse job posting HTML: %w", err)
	}

	listing := &Listing{
		Title:       firstNonEmpty(metaContent(doc, "og:title"), text(doc, "h1")),
		Company:     firstNonEmpty(metaContent(doc, "og:site_name"), itemprop(doc, "hiringOrganization"), text(doc, ".company, [class*=company]")),
		Location:    firstNonEmpty(itemprop(doc, "jobLocation"), text(doc, ".location, [class*=location]")),
		Description: firstNonEmpty(metaContent(doc, "og:description"), metaName(doc, "description"), text(doc, "[class*=description]")),
	}

	if listing.Description == "" {
		listing.Description = strings.TrimSpace(doc.Find("body").Text())
	}
	listing.Description = collapseWhitespace(listing.Description)
	if len(listing.Description) > maxIngestDescription {
		listing.Description = listing.Description[:maxIngestDescription]
	}

	if listing.Title == "" {
		return nil, fmt.Errorf("job posting page has no recognizable title")
	}
	return listing, nil
}

func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).Attr("content")
	return strings.TrimSpace(content)
}

func metaName(doc *goquery.Document, name string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[name=%q]`, name)).Attr("content")
	return strings.TrimSpace(content)
}

func itemprop(doc *goquery.Document, prop string) string {
	return strings.TrimSpace(doc.Find(fmt.Sprintf(`[itemprop=%q]`, prop)).First().Text())
}

func text(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
