// Package check composes the anomaly predicates into an ordered diagnostic
// report for a single name.
package check

import (
	"context"
	"errors"
	"strings"

	"github.com/baditaflorin/go_name_cleaner/internal/core/detect"
	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_name_cleaner/internal/core/scan"
	"github.com/baditaflorin/go_name_cleaner/internal/ports"
)

// Default configuration values.
const (
	DefaultSeparator = " "
	// IssueJoin is the canonical separator between reported issue labels.
	IssueJoin = "; "
)

// Config holds configuration for the name checker.
type Config struct {
	// Separator is the word separator expected in the name. It is stripped,
	// together with IgnoreChars, before the non-alphabetic check only.
	Separator string
	// IgnoreChars lists additional characters the alphabetic check ignores.
	IgnoreChars string
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Separator: DefaultSeparator,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if strings.ContainsAny(c.Separator, "\n") {
		return errors.New("separator must not contain newlines")
	}
	return nil
}

// Checker runs the fixed, ordered set of anomaly predicates against a name.
type Checker struct {
	config Config
	logger ports.Logger
}

// NewChecker creates a new name checker.
func NewChecker(config Config, logger ports.Logger) (*Checker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Checker{
		config: config,
		logger: logger,
	}, nil
}

// Check runs every predicate against name and collects the labels of those
// that fired, in evaluation order. A clean name yields an empty issue list.
// Only the non-alphabetic check sees the name with the separator and ignore
// characters stripped; every other predicate sees the original string.
func (c *Checker) Check(ctx context.Context, name string) domain.Report {
	c.logger.Debug("Starting name check", "name", name)

	details := make(map[string]interface{})

	select {
	case <-ctx.Done():
		c.logger.Error("Check cancelled", "error", ctx.Err())
		details["error"] = "check cancelled"
		return domain.Report{
			Name:       "check_name",
			Clean:      false,
			Convention: domain.ConventionUnknown,
			Details:    details,
		}
	default:
		// continue
	}

	ignore := c.config.Separator + c.config.IgnoreChars

	checks := []struct {
		label string
		fired bool
	}{
		{"outer whitespace", scan.ContainsOuterWhitespace(name)},
		{"multiple whitespace", scan.ContainsMultipleWhitespace(name)},
		{"acronym", scan.ContainsAcronym(name)},
		{"non-ascii characters", scan.ContainsNonASCII(name)},
		{"unicode dashes", scan.ContainsUnicodeDash(name)},
		{"ampersand", scan.ContainsAmpersand(name)},
		{"brackets", scan.ContainsBrackets(name)},
		{"digits", scan.ContainsDigit(name)},
		{"non-alphabetic characters", scan.ContainsNonAlphabetic(name, ignore)},
	}

	var issues []string
	for _, chk := range checks {
		if chk.fired {
			issues = append(issues, chk.label)
		}
	}

	convention := detect.Detect(name)

	details["issue_count"] = len(issues)
	details["convention"] = string(convention)

	c.logger.Debug("Completed name check",
		"name", name,
		"issues", issues,
		"convention", convention,
	)

	return domain.Report{
		Name:       "check_name",
		Issues:     issues,
		Clean:      len(issues) == 0,
		Convention: convention,
		Details:    details,
	}
}

// Join renders a report's issues as the canonical diagnostic string. A clean
// report renders as the empty string.
func Join(report domain.Report) string {
	return strings.Join(report.Issues, IssueJoin)
}
