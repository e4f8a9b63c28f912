// Package ranking scores support questions against the FAQ knowledge base.
//
// Relevance is a bag-of-words overlap ratio computed separately for the
// question, answer and category of each record and combined as
//
//	composite = score(q, question) + 0.5*score(q, answer) + 0.3*score(q, category)
//
// Every function in this package is pure: it reads the corpus and never
// writes it, so any number of goroutines may call it concurrently.
package ranking
