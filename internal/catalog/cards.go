package catalog

import (
	"fmt"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/format"
)

// CourseCard is the view model of a course card.
type CourseCard struct {
	Course
	PriceLabel    string
	StudentsLabel string
	RatingLabel   string
	Href          string
}

// BuildCourseCards maps courses to cards in fixture order.
func BuildCourseCards(courses []Course, lang string) []CourseCard {
	cards := make([]CourseCard, 0, len(courses))
	for _, c := range courses {
		href := c.Path
		if href == "" {
			href = "/courses/" + c.ID
		}
		cards = append(cards, CourseCard{
			Course:        c,
			PriceLabel:    format.FmtCurrency(c.Price, c.Currency, lang),
			StudentsLabel: format.FmtCount(c.Students),
			RatingLabel:   fmt.Sprintf("%.1f", c.Rating),
			Href:          href,
		})
	}
	return cards
}

// BranchCard is the view model of a branch card.
type BranchCard struct {
	Key         string
	Type        string
	Name        string
	Description string
}

// HasType reports whether the optional branch type line is rendered.
func (c BranchCard) HasType() bool { return c.Type != "" }

// BuildBranchCards maps branches to cards. A nil or empty sequence yields no cards.
func BuildBranchCards(branches []Branch) []BranchCard {
	if len(branches) == 0 {
		return nil
	}
	cards := make([]BranchCard, 0, len(branches))
	for _, b := range branches {
		cards = append(cards, BranchCard{
			Key:         b.ID,
			Type:        b.BranchType,
			Name:        b.BranchName,
			Description: b.BranchDescription,
		})
	}
	return cards
}
