package datapath

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviations(t *testing.T) {
	tests := []struct {
		name       string
		site       string
		city       string
		experience string
		wantSite   string
		wantRegion string
		wantExp    string
	}{
		{"justjoinit triple", "justjoinit", "trojmiasto", "junior", "jjit", "tri", "j"},
		{"pracuj numeric code", "pracujplit", "warszawa", "17", "ppl", "waw", "j"},
		{"director code", "pracujplit", "", "20%2C6", "ppl", "all", "man"},
		{"c-level pair", "justjoinit", "all-locations", "c-level,mid", "jjit", "all", "man"},
		{"case insensitive city", "justjoinit", "Warsaw", "Junior", "jjit", "waw", "j"},
		{"unknown site clipped", "newboard", "krakow", "architect", "newb", "kra", "a"},
		{"short unknowns kept", "hn", "lu", "x", "hn", "lu", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, region, exp := Abbreviations(tt.site, tt.city, tt.experience)
			assert.Equal(t, tt.wantSite, site)
			assert.Equal(t, tt.wantRegion, region)
			assert.Equal(t, tt.wantExp, exp)
		})
	}
}

func TestBuildCreatesDatedPath(t *testing.T) {
	base := t.TempDir()

	path, err := Build(base, "justjoinit", "trojmiasto", "junior", "html")
	require.NoError(t, err)

	want := filepath.Join(base, "jjit", "tri", "j", time.Now().Format("02012006")+".html")
	assert.Equal(t, want, path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLatestPrefersNewestDate(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "jjit", "tri", "j")
	require.NoError(t, os.MkdirAll(dir, 0755))

	//lexically 01092025 sorts before 31082025, but it is the newer date
	for _, name := range []string{"31082025.html", "01092025.html", "notadate.html", "31082025.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	path, err := Latest(base, "justjoinit", "trojmiasto", "junior", "html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "01092025.html"), path)
}

func TestLatestErrsWhenEmpty(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "jjit", "tri", "j")
	require.NoError(t, os.MkdirAll(dir, 0755))

	_, err := Latest(base, "justjoinit", "trojmiasto", "junior", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no html files")
}

func TestLatestErrsWhenDirMissing(t *testing.T) {
	_, err := Latest(t.TempDir(), "justjoinit", "trojmiasto", "junior", "html")
	require.Error(t, err)
}
