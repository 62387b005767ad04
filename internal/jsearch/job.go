package jsearch

// Job is one posting as returned by the provider, reduced to the
// fields the matching engine needs.
type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type Jobs struct {
	Items []*Job
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

// Append adds the postings from s, keeping provider order. Used when
// paging through results.
func (j *Jobs) Append(s *Jobs) {
	j.Items = append(j.Items, s.Items...)
}
