// Package lawref serves curated excerpts from the bundled Indian law
// markdown files. It is retrieval by lookup table, not search: every
// catalogued intent maps to at most one law file, one explainer section
// and one complaint-channel section.
package lawref

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aramlabs/aram-assistant/pkg/logging"
)

// intentLawFiles maps intent identifiers to their law markdown file.
// Intents with no statutory backing (greetings, guidance, unknown) are
// simply absent.
var intentLawFiles = map[string]string{
	"CP001":  "consumer_protection.md",
	"CP002":  "consumer_protection.md",
	"CP003":  "consumer_protection.md",
	"CP004":  "consumer_protection.md",
	"IT001":  "it_act.md",
	"IT002":  "it_act.md",
	"IT003":  "it_act.md",
	"IT004":  "it_act.md",
	"BNS001": "bns.md",
	"BNS002": "bns.md",
	"BNS003": "bns.md",
}

// intentSections names the explainer section inside the law file.
var intentSections = map[string]string{
	"CP001":  "Refund Not Received",
	"CP002":  "Defective Product",
	"CP003":  "Online Shopping Issues",
	"CP004":  "Service Deficiency",
	"IT001":  "Cyber Fraud",
	"IT002":  "Identity Theft",
	"IT003":  "Online Harassment",
	"IT004":  "Hacking",
	"BNS001": "Cheating",
	"BNS002": "Criminal Intimidation",
	"BNS003": "Harassment",
}

// complaintSections names the filing-channel section inside the law file.
var complaintSections = map[string]string{
	"CP001":  "Where to File Complaint",
	"CP002":  "Where to File Complaint",
	"CP003":  "Where to File Complaint",
	"CP004":  "Where to File Complaint",
	"IT001":  "Where to Report",
	"IT002":  "Where to Report",
	"IT003":  "Where to Report",
	"IT004":  "Where to Report",
	"BNS001": "Where to File Complaint",
	"BNS002": "Where to File Complaint",
	"BNS003": "Where to File Complaint",
}

// Library holds the law files in memory. Files are read once at startup
// and treated as immutable; lookups never touch the disk.
type Library struct {
	files  map[string]string
	logger *logging.Logger
}

// NewLibrary loads every referenced law file from dir. A missing file is
// logged and served as empty content so the assistant keeps answering
// without the statute excerpt.
func NewLibrary(dir string, logger *logging.Logger) (*Library, error) {
	if dir == "" {
		return nil, fmt.Errorf("lawref: laws directory is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	files := make(map[string]string)
	for _, filename := range intentLawFiles {
		if _, done := files[filename]; done {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("lawref: failed to read law file %s: %w", filename, err)
			}
			logger.Warn("lawref: law file missing, serving without excerpts", "file", filename)
			files[filename] = ""
			continue
		}
		files[filename] = string(data)
	}
	return &Library{files: files, logger: logger}, nil
}

// Context returns the explainer excerpt for the intent, or "" when the
// intent has no law mapping or the section is absent.
func (l *Library) Context(intentID string) string {
	return l.section(intentID, intentSections)
}

// ComplaintChannels returns the filing-channel excerpt for the intent,
// or "" when nothing is mapped.
func (l *Library) ComplaintChannels(intentID string) string {
	return l.section(intentID, complaintSections)
}

func (l *Library) section(intentID string, sections map[string]string) string {
	filename, ok := intentLawFiles[intentID]
	if !ok {
		return ""
	}
	content := l.files[filename]
	if content == "" {
		return ""
	}
	name, ok := sections[intentID]
	if !ok {
		return ""
	}
	return extractSection(content, name)
}

// extractSection pulls the body of one "### name" heading, stopping at
// the next section or chapter heading. The heading match is a substring
// match, tolerating suffixes like an article number after the name.
func extractSection(content, name string) string {
	heading := "### " + name

	var out []string
	capturing := false
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, heading) {
			capturing = true
			continue
		}
		if !capturing {
			continue
		}
		if strings.HasPrefix(line, "###") || strings.HasPrefix(line, "## ") {
			break
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
