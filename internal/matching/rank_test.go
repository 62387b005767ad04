package matching

import (
	"testing"

	"github.com/skillsift/skillsift/internal/jsearch"
	"github.com/skillsift/skillsift/internal/skills"
)

var testDict = skills.New([]string{"python", "java", "go", "docker", "redis", "kafka", "spark", "scala"})

func resumeSet(text string) skills.Set {
	return testDict.Extract(text)
}

func TestRankCompositeKey(t *testing.T) {
	resume := resumeSet("python java go")

	jobs := &jsearch.Jobs{Items: []*jsearch.Job{
		{Title: "A", Description: "python java go docker"},
		{Title: "B", Description: "python java go"},
		{Title: "C", Description: "python java redis kafka spark scala docker"},
	}}

	matches := Rank(resume, jobs, testDict)

	want := []string{"B", "A", "C"}
	if len(matches) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(matches))
	}
	for i, title := range want {
		if matches[i].Title != title {
			t.Fatalf("position %d: expected %s, got %s", i, title, matches[i].Title)
		}
	}
}

func TestRankStability(t *testing.T) {
	resume := resumeSet("python")

	// "first" and "second" tie on both keys; "top" forces the sort to
	// actually move entries around them.
	jobs := &jsearch.Jobs{Items: []*jsearch.Job{
		{Title: "first", Description: "python docker"},
		{Title: "second", Description: "python redis"},
		{Title: "top", Description: "python"},
	}}

	matches := Rank(resume, jobs, testDict)

	if matches[0].Title != "top" {
		t.Fatalf("expected top first, got %s", matches[0].Title)
	}
	if matches[1].Title != "first" || matches[2].Title != "second" {
		t.Fatalf("expected tied postings to keep input order, got %s then %s",
			matches[1].Title, matches[2].Title)
	}
}

func TestRankInvariantAndLists(t *testing.T) {
	resume := resumeSet("python go")

	jobs := &jsearch.Jobs{Items: []*jsearch.Job{
		{Title: "A", Description: "python go docker redis"},
		{Title: "B", Description: "kafka spark"},
		{Title: "C", Description: ""},
	}}

	matches := Rank(resume, jobs, testDict)

	for _, m := range matches {
		if m.TotalSkillsInJob != m.MatchingSkillsCount+m.MissingSkillsCount {
			t.Fatalf("%s: total %d != matching %d + missing %d",
				m.Title, m.TotalSkillsInJob, m.MatchingSkillsCount, m.MissingSkillsCount)
		}
		if len(m.MatchingSkills) != m.MatchingSkillsCount {
			t.Fatalf("%s: matching list length %d != count %d", m.Title, len(m.MatchingSkills), m.MatchingSkillsCount)
		}
		if len(m.MissingSkills) != m.MissingSkillsCount {
			t.Fatalf("%s: missing list length %d != count %d", m.Title, len(m.MissingSkills), m.MissingSkillsCount)
		}
	}
}

func TestRankSortedDisplayLists(t *testing.T) {
	resume := resumeSet("python go")

	jobs := &jsearch.Jobs{Items: []*jsearch.Job{
		{Title: "A", Description: "redis docker kafka python go"},
	}}

	matches := Rank(resume, jobs, testDict)

	m := matches[0]
	wantMatching := []string{"Go", "Python"}
	wantMissing := []string{"Docker", "Kafka", "Redis"}

	if len(m.MatchingSkills) != len(wantMatching) {
		t.Fatalf("expected matching %v, got %v", wantMatching, m.MatchingSkills)
	}
	for i := range wantMatching {
		if m.MatchingSkills[i] != wantMatching[i] {
			t.Fatalf("expected matching %v, got %v", wantMatching, m.MatchingSkills)
		}
	}

	if len(m.MissingSkills) != len(wantMissing) {
		t.Fatalf("expected missing %v, got %v", wantMissing, m.MissingSkills)
	}
	for i := range wantMissing {
		if m.MissingSkills[i] != wantMissing[i] {
			t.Fatalf("expected missing %v, got %v", wantMissing, m.MissingSkills)
		}
	}
}

func TestRankEmptyInput(t *testing.T) {
	resume := resumeSet("python")

	matches := Rank(resume, &jsearch.Jobs{}, testDict)
	if len(matches) != 0 {
		t.Fatalf("expected no matches for empty postings, got %d", len(matches))
	}

	matches = Rank(resume, nil, testDict)
	if len(matches) != 0 {
		t.Fatalf("expected no matches for nil postings, got %d", len(matches))
	}
}

func TestRankEmptyDescription(t *testing.T) {
	resume := resumeSet("python")

	jobs := &jsearch.Jobs{Items: []*jsearch.Job{
		{Title: "A", Description: ""},
	}}

	matches := Rank(resume, jobs, testDict)

	m := matches[0]
	if m.TotalSkillsInJob != 0 || m.MatchingSkillsCount != 0 || m.MissingSkillsCount != 0 {
		t.Fatalf("expected zero counts for empty description, got %+v", m)
	}
	if len(m.MatchingSkills) != 0 || len(m.MissingSkills) != 0 {
		t.Fatalf("expected empty lists for empty description, got %+v", m)
	}
}
