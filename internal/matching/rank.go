// Package matching ranks job postings by skill overlap with a resume.
package matching

import (
	"sort"

	"github.com/skillsift/skillsift/internal/jsearch"
	"github.com/skillsift/skillsift/internal/skills"
)

// Match is a posting enriched with overlap metrics against the
// candidate's skill set. TotalSkillsInJob always equals
// MatchingSkillsCount + MissingSkillsCount: both counts partition the
// posting's own extracted set by resume membership.
type Match struct {
	jsearch.Job

	MatchingSkillsCount int      `json:"matching_skills_count"`
	MissingSkillsCount  int      `json:"missing_skills_count"`
	TotalSkillsInJob    int      `json:"total_skills_in_job"`
	MatchingSkills      []string `json:"matching_skills"`
	MissingSkills       []string `json:"missing_skills"`
}

// Rank enriches every posting with overlap metrics and orders the
// result by matching skills descending, then missing skills ascending.
// The sort is stable: postings tied on both keys keep the provider's
// order. Rank never fails; an absent description simply yields an
// empty skill set for that posting.
func Rank(resume skills.Set, jobs *jsearch.Jobs, dict *skills.Dictionary) []*Match {
	if jobs == nil || jobs.Len() == 0 {
		return []*Match{}
	}

	matches := make([]*Match, 0, jobs.Len())

	for _, job := range jobs.Items {
		jobSkills := dict.Extract(job.Description)
		matching := resume.Intersect(jobSkills)
		missing := jobSkills.Diff(resume)

		matches = append(matches, &Match{
			Job:                 *job,
			MatchingSkillsCount: matching.Len(),
			MissingSkillsCount:  missing.Len(),
			TotalSkillsInJob:    jobSkills.Len(),
			MatchingSkills:      matching.Sorted(),
			MissingSkills:       missing.Sorted(),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchingSkillsCount != matches[j].MatchingSkillsCount {
			return matches[i].MatchingSkillsCount > matches[j].MatchingSkillsCount
		}

		return matches[i].MissingSkillsCount < matches[j].MissingSkillsCount
	})

	return matches
}
