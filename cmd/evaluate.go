package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/engine"
	"github.com/spigell/jobfit/internal/request"
	"github.com/spigell/jobfit/internal/source"
)

const (
	PromptSummary = "Show summary"
	PromptJSON    = "Show full result"
	PromptDebug   = "Show debug details"
	PromptDump    = "Dump result to file"
	PromptExit    = "Exit"
)

var errExit = errors.New("exit requested")

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one profile against one job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().String("profile", "", "candidate profile text")
	evaluateCmd.Flags().String("profile-file", "", "file with the candidate profile text, - for stdin")
	evaluateCmd.Flags().String("job", "", "job posting text")
	evaluateCmd.Flags().String("job-file", "", "file with the job posting text, - for stdin")
	evaluateCmd.Flags().String("hints", "", "structured profile hints as a JSON object")
	evaluateCmd.Flags().StringP("request", "r", "", "request file (json or yaml) with profile_text, job_text and profile_structured")
	evaluateCmd.Flags().StringP("output", "o", outputJSON, "output format: json or text")
	evaluateCmd.Flags().BoolP("interactive", "i", false, "open an interactive menu after evaluation")

	viper.BindPFlag("output", evaluateCmd.Flags().Lookup("output"))
	viper.BindPFlag("evaluate.interactive", evaluateCmd.Flags().Lookup("interactive"))
}

func evaluate(cmd *cobra.Command) {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the evaluation", zap.String("version", version))

	req, err := buildRequest(cmd)
	if err != nil {
		logger.Fatal("building the request", zap.Error(err))
	}

	if err := request.Validate(req); err != nil {
		logger.Fatal("invalid request", zap.Error(err))
	}

	result := engine.New(logger).Evaluate(req)

	logger.Info("evaluated",
		zap.String("decision", result.Decision),
		zap.Int("score", result.Score),
	)

	if err := printResult(os.Stdout, result, config.Output); err != nil {
		logger.Fatal("printing the result", zap.Error(err))
	}

	if !config.Evaluate.Interactive {
		return
	}

	prompt := promptui.Select{
		Label: "What next?",
		Items: []string{PromptSummary, PromptJSON, PromptDebug, PromptDump, PromptExit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, result engine.Result) error {
	switch action {
	case PromptSummary:
		return printResult(os.Stdout, result, outputText)
	case PromptJSON:
		return printResult(os.Stdout, result, outputJSON)
	case PromptDebug:
		pretty, _ := json.MarshalIndent(result.Debug, "", "  ")
		fmt.Fprintln(os.Stdout, string(pretty))
		return nil
	case PromptDump:
		filename, err := dumpToTmpFile(result)
		if err != nil {
			return eris.Wrap(err, "dump result to file")
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Debug("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// buildRequest merges a request file with inline flags. Flags win.
func buildRequest(cmd *cobra.Command) (engine.Request, error) {
	var req engine.Request

	if path := flagString(cmd, "request"); path != "" {
		loaded, err := request.Load(path)
		if err != nil {
			return req, err
		}
		req = loaded
	}

	profile := source.Text{Label: "profile", Inline: flagString(cmd, "profile"), Path: flagString(cmd, "profile-file")}
	if profile.IsSet() {
		text, err := source.Read(profile, cmd.InOrStdin())
		if err != nil {
			return req, err
		}
		req.ProfileText = text
	}

	job := source.Text{Label: "job", Inline: flagString(cmd, "job"), Path: flagString(cmd, "job-file")}
	if job.IsSet() {
		text, err := source.Read(job, cmd.InOrStdin())
		if err != nil {
			return req, err
		}
		req.JobText = text
	}

	if raw := flagString(cmd, "hints"); raw != "" {
		hints, err := request.ParseHints(raw)
		if err != nil {
			return req, err
		}
		req.ProfileStructured = hints
	}

	return req, nil
}

func flagString(cmd *cobra.Command, name string) string {
	f := cmd.Flag(name)
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.Value.String())
}

func printResult(w io.Writer, result engine.Result, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case outputText:
		_, err := io.WriteString(w, summary(result))
		return err
	case outputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func summary(r engine.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s (%d)\n", r.Icon, r.Decision, r.Score)
	for _, bullet := range r.Bullets {
		fmt.Fprintf(&b, "  - %s\n", bullet)
	}
	if len(r.RiskFlags) > 0 {
		b.WriteString("Risks:\n")
		for _, flag := range r.RiskFlags {
			fmt.Fprintf(&b, "  ! %s\n", flag)
		}
	}
	fmt.Fprintf(&b, "Next step: %s\n", r.NextStep)
	fmt.Fprintf(&b, "Location: %s | logic %s\n", r.LocationConstraint, r.LogicVersion)

	return b.String()
}

func dumpToTmpFile(result engine.Result) (string, error) {
	file, err := os.CreateTemp("", "jobfit_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := printResult(file, result, outputJSON); err != nil {
		return "", err
	}
	return file.Name(), nil
}
