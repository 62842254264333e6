// Package extractor turns raw professor-page markup into a validated review
// candidate. It performs no network or persistence side effects.
package extractor

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/domain"
)

// Selectors for the professor page markup (styled-components class names).
const (
	selFirstName    = "div.NameTitle__Name-dowf0z-0.cfjPUG span:first-of-type"
	selLastName     = "span.NameTitle__LastNameWrapper-dowf0z-2"
	selComments     = "div.Comments__StyledComments-dzzyvm-0.gRjWel"
	selRatingHeader = "div.CardNumRating__CardNumRatingHeader-sc-17t4b9u-1.fVETNc"
	selRatingNumber = "div.CardNumRating__CardNumRatingNumber-sc-17t4b9u-2.gcFhmN"
	selSubject      = "div.RatingHeader__StyledClass-sc-1dlkqw1-3.eXfReS"
)

// qualityLabel is the rating category we extract. Other categories on the
// page (e.g. "Difficulty") are ignored.
const qualityLabel = "Quality"

// Extractor parses professor pages into review candidates.
type Extractor struct {
	intn func(n int) int
}

// New creates an extractor using the shared math/rand source for selection.
func New() *Extractor {
	return &Extractor{intn: rand.Intn}
}

// WithRand replaces the selection source, making selection reproducible.
// The given *rand.Rand must not be shared across goroutines.
func (e *Extractor) WithRand(r *rand.Rand) *Extractor {
	e.intn = r.Intn
	return e
}

// Extract parses the page and returns one review candidate: a uniformly
// random comment paired with the Quality rating at the same list index.
// sourceURL is used for diagnostics only.
func (e *Extractor) Extract(html, sourceURL string) (domain.ReviewCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.ReviewCandidate{}, fmt.Errorf("parse page %s: %w", sourceURL, err)
	}

	firstName := strings.TrimSpace(doc.Find(selFirstName).First().Text())
	lastName := strings.TrimSpace(doc.Find(selLastName).First().Text())
	professor := strings.TrimSpace(firstName + " " + lastName)

	var comments []string
	doc.Find(selComments).Each(func(_ int, s *goquery.Selection) {
		comments = append(comments, strings.TrimSpace(s.Text()))
	})

	ratings := collectQualityRatings(doc)

	subject := strings.TrimSpace(doc.Find(selSubject).First().Text())

	// Validation order is fixed: the first missing field fails the whole
	// extraction; no partial candidate is ever returned.
	switch {
	case professor == "":
		return domain.ReviewCandidate{}, domain.NewExtractionError(domain.FieldProfessor)
	case len(comments) == 0:
		return domain.ReviewCandidate{}, domain.NewExtractionError(domain.FieldReview)
	case len(ratings) == 0:
		return domain.ReviewCandidate{}, domain.NewExtractionError(domain.FieldRating)
	case subject == "":
		return domain.ReviewCandidate{}, domain.NewExtractionError(domain.FieldSubject)
	}

	// Comments and ratings are collected in document order, so a shared index
	// pairs each comment with its own Quality rating.
	n := len(comments)
	if len(ratings) < n {
		n = len(ratings)
	}
	i := e.intn(n)

	return domain.ReviewCandidate{
		Professor: professor,
		Subject:   subject,
		Stars:     ratings[i],
		Review:    comments[i],
	}, nil
}

// collectQualityRatings returns the numeric Quality ratings in document
// order. Headers for other rating categories and unparseable numbers are
// skipped.
func collectQualityRatings(doc *goquery.Document) []float64 {
	var ratings []float64
	doc.Find(selRatingHeader).Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) != qualityLabel {
			return
		}
		text := strings.TrimSpace(s.NextFiltered(selRatingNumber).Text())
		if text == "" {
			return
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return
		}
		ratings = append(ratings, v)
	})
	return ratings
}
