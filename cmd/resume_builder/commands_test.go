package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/types"
)

func (c *cli) document() types.AppData {
	c.t.Helper()
	out := c.mustRun("show", "--json")
	var doc types.AppData
	require.NoError(c.t, json.Unmarshal([]byte(out), &doc), out)
	return doc
}

func TestShow_DefaultDocument(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("show")
	assert.Contains(t, out, "Alex Doe")
	assert.Contains(t, out, "Classic ATS")
}

func TestSetPersonal_Persists(t *testing.T) {
	c := newCLI(t)
	c.mustRun("set", "personal", "fullName", "Jane Roe")
	assert.Equal(t, "Jane Roe", c.document().Resume.PersonalInfo.FullName)

	_, err := c.run("set", "personal", "nickname", "JR")
	assert.Error(t, err)
	_, err = c.run("set", "education", "x", "y")
	assert.Error(t, err)
}

func TestExperienceCommands(t *testing.T) {
	c := newCLI(t)

	id := addedID(t, c.mustRun("add", "experience"))
	c.mustRun("update", "experience", id, "company", "Acme")
	c.mustRun("update", "experience", id, "current", "true")
	c.mustRun("update", "experience", id, "description", "Did A\n\n- Did B")
	c.mustRun("format-bullets", id)

	doc := c.document()
	require.Len(t, doc.Resume.Experience, 2)
	exp := doc.Resume.Experience[0]
	assert.Equal(t, id, exp.ID)
	assert.Equal(t, "Acme", exp.Company)
	assert.True(t, exp.Current)
	assert.Equal(t, "• Did A\n• Did B", exp.Description)

	c.mustRun("move", "0", "down")
	assert.Equal(t, id, c.document().Resume.Experience[1].ID)

	_, err := c.run("move", "0", "sideways")
	assert.Error(t, err)
	_, err = c.run("update", "experience", id, "salary", "1")
	assert.Error(t, err)

	c.mustRun("remove", "experience", id)
	assert.Len(t, c.document().Resume.Experience, 1)
	// unknown ids change nothing
	c.mustRun("remove", "experience", "missing")
	assert.Len(t, c.document().Resume.Experience, 1)
}

func TestEducationAndProjects(t *testing.T) {
	c := newCLI(t)

	eduID := addedID(t, c.mustRun("add", "education"))
	projID := addedID(t, c.mustRun("add", "project"))
	c.mustRun("update", "project", projID, "technologies", "Go, SQLite")

	doc := c.document()
	assert.Equal(t, eduID, doc.Resume.Education[0].ID)
	assert.Equal(t, []string{"Go", "SQLite"}, doc.Resume.Projects[0].Technologies)

	c.mustRun("remove", "education", eduID)
	c.mustRun("remove", "project", projID)
	assert.Equal(t, types.DefaultResume(), c.document().Resume)
}

func TestCustomSectionCommands(t *testing.T) {
	c := newCLI(t)

	sectionID := addedID(t, c.mustRun("add", "section", "list"))
	c.mustRun("update", "section", sectionID, "title", "Languages")
	itemID := addedID(t, c.mustRun("add", "item", sectionID))
	c.mustRun("update", "item", itemID, "name", "English", "--section", sectionID)
	c.mustRun("update", "item", itemID, "description", "Native", "--section", sectionID)

	for _, tmpl := range []string{"classic", "modern", "minimal"} {
		out := c.mustRun("render", "--format", "text", "--template", tmpl)
		assert.Contains(t, out, "Languages", tmpl)
		assert.Contains(t, out, "English", tmpl)
		assert.Contains(t, out, "Native", tmpl)
	}

	_, err := c.run("update", "item", itemID, "name", "x")
	assert.ErrorContains(t, err, "--section")
	_, err = c.run("add", "item", "missing")
	assert.ErrorContains(t, err, "not found")
	_, err = c.run("add", "section", "table")
	assert.Error(t, err)
	_, err = c.run("update", "section", sectionID, "type", "detailed")
	assert.Error(t, err)

	c.mustRun("remove", "item", itemID, "--section", sectionID)
	assert.Empty(t, c.document().Resume.CustomSections[0].Items)
	c.mustRun("remove", "section", sectionID)
	assert.Empty(t, c.document().Resume.CustomSections)
}

func TestMoveSections(t *testing.T) {
	c := newCLI(t)
	first := addedID(t, c.mustRun("add", "section", "list"))
	second := addedID(t, c.mustRun("add", "section", "detailed"))

	c.mustRun("move", "1", "up", "--kind", "section")
	sections := c.document().Resume.CustomSections
	assert.Equal(t, second, sections[0].ID)
	assert.Equal(t, first, sections[1].ID)
}

func TestSkills(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("skills", "Go, Rust ,")
	assert.Contains(t, out, "Go, Rust, ")
	assert.Equal(t, []string{"Go", "Rust", ""}, c.document().Resume.Skills)
}

func TestCoverLetterCommands(t *testing.T) {
	c := newCLI(t)

	c.mustRun("cover", "set", "recipient.company", "Acme")
	assert.Contains(t, c.mustRun("cover", "paragraph", "add"), "Added paragraph 3")
	c.mustRun("cover", "paragraph", "set", "3", "P.S.")
	c.mustRun("cover", "paragraph", "remove", "0")

	cl := c.document().CoverLetter
	assert.Equal(t, "Acme", cl.Recipient.Company)
	require.Len(t, cl.Paragraphs, 3)
	assert.Equal(t, "P.S.", cl.Paragraphs[2])

	_, err := c.run("cover", "paragraph", "shuffle")
	assert.Error(t, err)
	_, err = c.run("cover", "paragraph", "remove", "first")
	assert.Error(t, err)
	_, err = c.run("cover", "set", "signature", "x")
	assert.Error(t, err)

	out := c.mustRun("render", "--cover-letter", "--format", "text")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "P.S.")
}

func TestHistoryCommands(t *testing.T) {
	c := newCLI(t)

	assert.Contains(t, c.mustRun("history", "list"), "No saved versions.")

	out := c.mustRun("history", "snapshot", "First draft")
	require.True(t, strings.HasPrefix(out, "Saved version "), out)
	id := strings.Fields(out)[2]

	c.mustRun("set", "personal", "fullName", "Changed")

	// declining leaves the document alone
	out, err := c.runWithInput("n\n", "history", "restore", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Equal(t, "Changed", c.document().Resume.PersonalInfo.FullName)

	out, err = c.runWithInput("y\n", "history", "restore", id)
	require.NoError(t, err, out)
	assert.Equal(t, "Alex Doe", c.document().Resume.PersonalInfo.FullName)

	list := c.mustRun("history", "list")
	assert.Contains(t, list, "HISTORY (2)")
	assert.Contains(t, list, "Auto-save")
	assert.Contains(t, list, "First draft")

	assert.Contains(t, c.mustRun("history", "show", id), "First draft")
	_, err = c.run("history", "show", "missing")
	assert.Error(t, err)
	_, err = c.run("history", "restore", "missing", "--yes")
	assert.ErrorContains(t, err, "not found")

	c.mustRun("history", "load", id, "--yes")
	c.mustRun("history", "delete", id, "--yes")
	assert.NotContains(t, c.mustRun("history", "list"), "First draft")

	out, err = c.run("history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled", "no answer declines")
	assert.NotContains(t, c.mustRun("history", "list"), "No saved versions.")

	_, err = c.runWithInput("yes\n", "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, c.mustRun("history", "list"), "No saved versions.")
}

func TestNewDocument(t *testing.T) {
	c := newCLI(t)
	c.mustRun("set", "personal", "fullName", "Jane Roe")

	out, err := c.runWithInput("no\n", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Equal(t, "Jane Roe", c.document().Resume.PersonalInfo.FullName)

	c.mustRun("new", "--yes")
	assert.Equal(t, "Alex Doe", c.document().Resume.PersonalInfo.FullName)
	assert.Contains(t, c.mustRun("history", "list"), "Before New Document")
}

func TestExportImport(t *testing.T) {
	c := newCLI(t)
	dir := t.TempDir()
	c.mustRun("set", "personal", "fullName", "Jane Roe")

	pkg := filepath.Join(dir, "package.json")
	c.mustRun("export", "--out", pkg)
	single := filepath.Join(dir, "resume.json")
	c.mustRun("export", "--out", single, "--resume-only")

	stdout := c.mustRun("export", "--out", "-")
	assert.Contains(t, stdout, `"coverLetter"`)

	raw, err := os.ReadFile(pkg)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"resume\"")

	c.mustRun("new", "--yes")
	assert.Contains(t, c.mustRun("import", pkg), "Imported package")
	assert.Equal(t, "Jane Roe", c.document().Resume.PersonalInfo.FullName)
	assert.Contains(t, c.mustRun("history", "list"), "Before Import")

	assert.Contains(t, c.mustRun("import", single), "Imported resume")
}

func TestExport_DefaultFilename(t *testing.T) {
	c := newCLI(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Contains(t, c.mustRun("export"), "resume-package-alex-doe.json")
	_, err = os.Stat("resume-package-alex-doe.json")
	assert.NoError(t, err)
}

func TestImport_Rejected(t *testing.T) {
	c := newCLI(t)
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0644))
	out, err := c.run("import", broken)
	assert.ErrorContains(t, err, "Error parsing JSON")
	assert.Contains(t, out, "IMPORT REJECTED")

	wrong := filepath.Join(dir, "wrong.json")
	require.NoError(t, os.WriteFile(wrong, []byte(`{"resume": {}}`), 0644))
	_, err = c.run("import", wrong)
	assert.ErrorContains(t, err, "Invalid JSON format")

	_, err = c.run("import", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	assert.Contains(t, c.mustRun("history", "list"), "No saved versions.")
}

func TestTemplateCommand(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("template"), "* classic")

	assert.Contains(t, c.mustRun("template", "modern"), "Modern Clean")
	out := c.mustRun("template")
	assert.Contains(t, out, "* modern")
	assert.Contains(t, out, "  classic")

	_, err := c.run("template", "baroque")
	assert.Error(t, err)

	assert.Contains(t, c.mustRun("render"), "template-modern screen")
}

func TestRender(t *testing.T) {
	c := newCLI(t)

	assert.Contains(t, c.mustRun("render", "--format", "markdown"), "# Alex Doe")
	assert.Contains(t, c.mustRun("render", "--print", "--template", "minimal"), "template-minimal print")

	out := filepath.Join(t.TempDir(), "nested", "resume.html")
	assert.Contains(t, c.mustRun("render", "--out", out), out)
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Alex Doe")

	_, err = c.run("render", "--format", "docx")
	assert.Error(t, err)
	_, err = c.run("render", "--template", "baroque")
	assert.Error(t, err)
	_, err = c.run("render", "--all")
	assert.ErrorContains(t, err, "--out")
}

func TestRender_AllTemplates(t *testing.T) {
	c := newCLI(t)
	dir := t.TempDir()

	out := c.mustRun("render", "--all", "--out", dir, "--cover-letter", "--format", "markdown")
	for _, tmpl := range types.Templates {
		path := filepath.Join(dir, "cover-letter-"+string(tmpl.ID)+".md")
		assert.Contains(t, out, path)
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Dear Hiring Manager,")
	}
}

func TestPreview(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("preview", "--style", "notty", "--width", "200")
	assert.Contains(t, out, "Alex Doe")
	assert.Contains(t, out, "Tech Solutions Inc.")

	out = c.mustRun("preview", "--style", "notty", "--cover-letter")
	assert.Contains(t, out, "Dear Hiring Manager,")
}

func TestToken(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("token")
	assert.ErrorContains(t, err, config.EnvJWTSecret)

	t.Setenv(config.EnvJWTSecret, "cli-test-secret-that-is-long-enough-for-hs256")
	out := c.mustRun("token", "--subject", "tester")
	token := strings.Fields(out)[0]

	jwtCfg, err := config.LoadJWTConfig(true)
	require.NoError(t, err)
	subject, err := server.NewTokenService(jwtCfg).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "tester", subject)
}

func TestConfigFile(t *testing.T) {
	c := newCLI(t)
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "resume.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("template: minimal\nlog_mode: development\n"), 0644))
	assert.Contains(t, c.mustRun("--config", cfgPath, "template"), "* minimal")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("template: baroque\n"), 0644))
	_, err := c.run("--config", bad, "show")
	assert.ErrorContains(t, err, "template")

	_, err = c.run("--log-mode", "loud", "show")
	assert.Error(t, err)
}

func TestPrint(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	if _, ok := printing.FindChrome(os.Getenv(config.EnvChromePath)); !ok {
		t.Skip("Chrome not found")
	}
	c := newCLI(t)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	assert.Contains(t, c.mustRun("print", "--out", out), "page(s)")
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestPrint_RequiresOut(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("print")
	assert.ErrorContains(t, err, "out")
}
