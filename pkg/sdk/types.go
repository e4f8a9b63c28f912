package faqdesk

import "time"

// FAQ is one knowledge base record.
type FAQ struct {
	ID       int
	Category string
	Question string
	Answer   string
}

// Answer is the reply to a support question.
type Answer struct {
	Question  string // trimmed question as asked
	Answer    string // composed reply text
	Category  string // category of the best match, or "General"
	Timestamp time.Time
}

// Match is a ranked FAQ with its relevance score.
type Match struct {
	FAQ   FAQ
	Score float64
}

// KnowledgeBase is the full listing of the loaded FAQs.
type KnowledgeBase struct {
	Title       string
	LastUpdated string
	Categories  []string
	FAQs        []FAQ
}

// CategoryListing holds the FAQs of one category.
type CategoryListing struct {
	Category string
	FAQs     []FAQ
	Total    int
}
