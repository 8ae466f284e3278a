package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CountWrappedRuns reports how many direction wrappers a reconstructed
// fragment carries per direction. Observability only: the counts feed the
// metadata sink and MUST NOT influence render decisions.
func CountWrappedRuns(fragment string) (rtlRuns int, ltrRuns int) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return 0, 0
	}
	rtlRuns = doc.Find(wrapperTag + `[dir="rtl"]`).Length()
	ltrRuns = doc.Find(wrapperTag + `[dir="ltr"]`).Length()
	return rtlRuns, ltrRuns
}
