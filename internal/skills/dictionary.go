// Package skills extracts known technical skills from free text by
// matching a fixed keyword catalog at word boundaries.
package skills

import (
	"regexp"
	"strings"
	"unicode"
)

// Keywords is the built-in skill catalog. The order groups keywords by
// domain and is kept for reproducibility of extraction traces; it does
// not affect the resulting set.
var Keywords = []string{
	// Programming languages
	"python", "java", "c#", "c++", "c", "javascript", "js", "typescript", "ts", "php", "ruby", "go", "golang", "swift", "kotlin", "rust", "scala",
	// Web frameworks (backend)
	"django", "flask", "spring", "spring boot", "nodejs", "node.js", "express", "expressjs", "ruby on rails",
	// Web frameworks (frontend)
	"react", "reactjs", "react.js", "angular", "angularjs", "vue", "vuejs", "vue.js", "svelte",
	// Databases and caching
	"sql", "mysql", "postgresql", "postgres", "mssql", "sqlite", "mongodb", "mongo", "nosql", "redis", "elasticsearch", "cassandra", "graphql",
	// Cloud and devops
	"aws", "amazon web services", "azure", "microsoft azure", "gcp", "google cloud", "docker", "kubernetes", "k8s", "terraform", "ansible",
	"jenkins", "ci/cd", "ci-cd", "git", "github", "gitlab", "devops",
	// Data science and machine learning
	"machine learning", "ml", "deep learning", "artificial intelligence", "ai", "tensorflow", "pytorch", "keras", "scikit-learn", "sklearn",
	"pandas", "numpy", "scipy", "matplotlib", "seaborn", "data analysis", "data analytics", "natural language processing", "nlp", "computer vision",
	// Big data
	"big data", "hadoop", "spark", "apache spark", "kafka", "apache kafka", "data engineering",
	// General software engineering and methodologies
	"data structures", "algorithms", "api", "rest", "restful", "microservices", "agile", "scrum", "testing", "qa", "automation",
}

type entry struct {
	keyword string
	name    string
	match   *regexp.Regexp
	// upper is set for keywords that are only trusted when the text
	// contains them in full caps ("sql", "api" collide with ordinary
	// prose when matched case-insensitively).
	upper *regexp.Regexp
}

// Dictionary is a compiled, immutable skill catalog. It is safe for
// concurrent use.
type Dictionary struct {
	entries []entry
}

var defaultDictionary = New(Keywords)

// Default returns the process-wide dictionary built from Keywords.
func Default() *Dictionary {
	return defaultDictionary
}

// New compiles an ordered keyword list into a Dictionary.
func New(keywords []string) *Dictionary {
	entries := make([]entry, 0, len(keywords))

	for _, keyword := range keywords {
		e := entry{
			keyword: keyword,
			name:    canonicalName(keyword),
			match:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`),
		}

		switch strings.ToLower(keyword) {
		case "sql", "api":
			e.upper = regexp.MustCompile(`\b` + strings.ToUpper(keyword) + `\b`)
		}

		entries = append(entries, e)
	}

	return &Dictionary{entries: entries}
}

// canonicalName maps a keyword to its display name. Synonyms collapse
// to a single name so the extracted set stays free of duplicates.
func canonicalName(keyword string) string {
	switch strings.ToLower(keyword) {
	case "js", "javascript":
		return "Javascript"
	case "aws", "amazon web services":
		return "AWS"
	case "gcp", "google cloud":
		return "GCP"
	}

	return titleCase(keyword)
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest: "machine learning" becomes "Machine Learning",
// "node.js" becomes "Node.Js".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}

	return b.String()
}
