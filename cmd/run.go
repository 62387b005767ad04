package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/skillsift/skillsift/internal/document"
	"github.com/skillsift/skillsift/internal/jsearch"
	"github.com/skillsift/skillsift/internal/logger"
	"github.com/skillsift/skillsift/internal/matching"
	"github.com/skillsift/skillsift/internal/skills"
	"github.com/skillsift/skillsift/internal/util"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowMore = "Show more"
	PromptDetails  = "Show job details"
	PromptExit     = "Exit"
	PromptBack     = "back"

	// descriptionPreviewLimit bounds the description shown in the
	// details view.
	descriptionPreviewLimit = 1500
)

var prompt = promptui.Select{
	Label: "Next?",
	Items: []string{PromptShowMore, PromptDetails, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Interactively match a resume against live job postings",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("resume", "r", "", "path to the resume file (pdf, docx or txt)")
	runCmd.Flags().BoolP("internship", "i", false, "internships only")
	runCmd.Flags().BoolP("entry-level", "e", false, "entry-level / fresher roles only")

	viper.BindPFlag("resume", runCmd.Flags().Lookup("resume"))
}

// run is the interactive front end: pick a role and location, extract
// the resume skills and page through ranked postings.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting skillsift", zap.String("version", version))

	if config == nil {
		logger.Fatal("config is required")
	}

	apiKey, err := resolveAPIKey(config)
	if err != nil {
		logger.Fatal(
			"loading jsearch api key",
			zap.Error(err),
			zap.String("hint", "set JSEARCH_API_KEY_FILE environment variable or the 'api-key-file' key in the configuration file"),
		)
	}

	source := jsearch.New(ctx, logger, apiKey)
	if config.UserAgent != "" {
		source.UserAgent = config.UserAgent
	}

	dict := skills.Default()

	resumeSkills := readResumeSkills(logger, dict)

	params, err := buildSearchParams(cmd, config)
	if err != nil {
		logger.Fatal("building search params", zap.Error(err))
	}

	logger.Info("starting the search",
		zap.String("query", params.Query),
		zap.String("location", params.Location),
	)

	jobs := source.Search(params)
	if jobs.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings found with the selected filters"))
		return
	}

	for {
		matches := matching.Rank(resumeSkills, jobs, dict)
		printMatches(logger, matches)

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		switch action {
		case PromptShowMore:
			params.Page++
			more := source.Search(params)
			if more.Len() == 0 {
				logger.Info("no more postings found")
				continue
			}
			jobs.Append(more)
		case PromptDetails:
			if err := showDetails(logger, matches); err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		case PromptExit:
			return
		}
	}
}

func readResumeSkills(logger *zap.Logger, dict *skills.Dictionary) skills.Set {
	path := strings.TrimSpace(viper.GetString("resume"))
	if path == "" {
		logger.Fatal("resume file is required",
			zap.String("hint", "pass --resume with a pdf, docx or txt file"),
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading resume file", zap.Error(err))
	}

	text, err := document.ReadText(path, data)
	if err != nil {
		logger.Fatal("extracting resume text", zap.Error(err))
	}

	resumeSkills := dict.Extract(text)
	if resumeSkills.Len() == 0 {
		logger.Warn("no known technical skills found in the resume")
	} else {
		logger.Info("skills found in the resume", zap.Strings("skills", resumeSkills.Sorted()))
	}

	return resumeSkills
}

// buildSearchParams takes role and location from the config when set,
// otherwise prompts for them.
func buildSearchParams(cmd *cobra.Command, config *Config) (*jsearch.SearchParams, error) {
	params := &jsearch.SearchParams{Page: 1}
	if config.Search != nil {
		*params = *config.Search
		if params.Page < 1 {
			params.Page = 1
		}
	}

	if params.Query == "" {
		role, err := selectFrom("Select your desired job role", config.JobRoles)
		if err != nil {
			return nil, err
		}
		params.Query = role
	}

	if params.Location == "" {
		location, err := selectFrom("Select a location", config.Locations)
		if err != nil {
			return nil, err
		}
		params.Location = location
	}

	if flagSet(cmd, "internship") {
		params.InternshipOnly = true
	}
	if flagSet(cmd, "entry-level") {
		params.EntryLevelOnly = true
	}

	return params, nil
}

func selectFrom(label string, items []string) (string, error) {
	p := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}

	_, selected, err := p.Run()
	return selected, err
}

func flagSet(cmd *cobra.Command, name string) bool {
	flag := cmd.Flag(name)
	return flag != nil && strings.EqualFold(flag.Value.String(), "true")
}

// printMatches logs a ranked summary table of all postings seen so far.
func printMatches(logger *zap.Logger, matches []*matching.Match) {
	summary := make([]map[string]string, 0, len(matches))
	for _, m := range matches {
		summary = append(summary, map[string]string{
			"title":   m.Title,
			"company": m.Company,
			"skills":  fmt.Sprintf("%d/%d match, %d missing", m.MatchingSkillsCount, m.TotalSkillsInJob, m.MissingSkillsCount),
		})
	}

	// do not bother error since the summary is built from plain strings
	pretty, _ := json.MarshalIndent(summary, "", "  ")
	logger.Info(string(pretty), zap.Int("count", len(matches)))
}

// showDetails lets the user inspect matching and missing skills of a
// single posting.
func showDetails(logger *zap.Logger, matches []*matching.Match) error {
	for {
		items := make([]string, 0, len(matches)+1)
		for _, m := range matches {
			items = append(items, fmt.Sprintf("%s at %s (%d/%d skills match)",
				m.Title, m.Company, m.MatchingSkillsCount, m.TotalSkillsInJob,
			))
		}

		detailsPrompt := promptui.Select{
			Label: "Choose a posting and press ENTER",
			Items: append(items, PromptBack),
		}

		idx, selected, err := detailsPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		m := matches[idx]
		logger.Info("posting details",
			zap.String("title", m.Title),
			zap.String("company", m.Company),
			zap.String("link", m.Link),
			zap.Strings("skills_you_have", m.MatchingSkills),
			zap.Strings("skills_to_add", m.MissingSkills),
			zap.String("description", util.TruncateForLog(m.Description, descriptionPreviewLimit)),
		)
	}
}
