package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExpansion_SuffixInsertions(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
	}{
		{"underscore suffix", "route_report.csv", "route_report_before.csv"},
		{"underscore backup", "data.json", "data_backup.json"},
		{"version suffix", "file.txt", "file_v2.txt"},
		{"dash date suffix", "route-report.csv", "route-report-2023-01.csv"},
		{"dash env suffix", "config-dev.yml", "config-dev-local.yml"},
		{"dot segment inserted", "route.report.csv", "route.report.v2.csv"},
		{"dot segment before ext", "app.config.json", "app.config.prod.json"},
		{"no separator at all", "route.csv", "router.csv"},
		{"word grown in place", "test.txt", "testing.txt"},
		{"base grown", "file.md", "filename.md"},
		{"extensionless backup", "Makefile", "Makefile_backup"},
		{"extensionless tilde", "Makefile", "Makefile~"},
		{"extension appended to bare name", "README", "README.md"},
		{"backup extension appended", "data.json", "data.json.old"},
		{"single char growth", "a.txt", "ab.txt"},
		{"long suffix", "f.txt", "f_with_very_long_suffix_added.txt"},
		{"doubled archive suffix", "file.tar.gz", "file.tar.gz.backup.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsExpansion(tt.old, tt.new),
				"IsExpansion(%q, %q) should match", tt.old, tt.new)
		})
	}
}

func TestIsExpansion_Rejections(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
	}{
		{"identical names", "file.txt", "file.txt"},
		{"identical json", "data.json", "data.json"},
		{"new shorter than old", "route_report_v2.csv", "route.csv"},
		{"shorter base", "long_filename.txt", "long.txt"},
		{"different prefix", "route_report.csv", "new_report.csv"},
		{"prefix insertion", "data.json", "metadata.json"},
		{"unrelated names", "file.txt", "other.txt"},
		{"unrelated extensionless", "LICENSE", "NOTICE"},
		{"separator changed midway", "route_report.csv", "route-report_before.csv"},
		{"separator changed with suffix", "test_file.txt", "test-file_new.txt"},
		{"interior segment removed", "test.old.csv", "test.csv"},
		{"backup segment removed", "file.backup.txt", "file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsExpansion(tt.old, tt.new),
				"IsExpansion(%q, %q) should not match", tt.old, tt.new)
		})
	}
}

// Prepending is never an expansion, no matter how much of the old name
// survives as a suffix.
func TestIsExpansion_NoStartInsertion(t *testing.T) {
	prepended := [][2]string{
		{"data.json", "metadata.json"},
		{"port.csv", "report.csv"},
		{"ignore", ".gitignore"},
		{"a.txt", "za.txt"},
	}

	for _, pair := range prepended {
		assert.False(t, IsExpansion(pair[0], pair[1]),
			"prepending to %q must not count as expansion", pair[0])
	}
}

// An accepted expansion is always strictly longer in characters, not bytes:
// multi-byte runes are compared whole.
func TestIsExpansion_Unicode(t *testing.T) {
	assert.True(t, IsExpansion("café.txt", "café_v2.txt"))
	assert.True(t, IsExpansion("日記.md", "日記_2023.md"))
	// Same byte length is irrelevant; rune count decides.
	assert.False(t, IsExpansion("日記.md", "日誌.md"))
}

// The forward and backward scans must meet exactly: an unmatched interior
// segment of old rejects the pair even when prefix and suffix both match.
func TestIsExpansion_ConsumedPrefixInvariant(t *testing.T) {
	assert.False(t, IsExpansion("route_report.csv", "route-xeport_extra.csv"))
	assert.False(t, IsExpansion("abcXdef.txt", "abcYdef_more.txt"))
}

func TestIsExpansion_Asymmetry(t *testing.T) {
	// The relationship is directional: the reverse order fails the length
	// rule, which is why the resolver probes both orders.
	assert.True(t, IsExpansion("report.csv", "report_old.csv"))
	assert.False(t, IsExpansion("report_old.csv", "report.csv"))
}
