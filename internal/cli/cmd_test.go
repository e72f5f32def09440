package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/pincecheck/internal/config"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/alexanderramin/pincecheck/internal/repository"
	"github.com/alexanderramin/pincecheck/internal/service"
	"github.com/alexanderramin/pincecheck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB seeded with the
// default operator.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	operators := service.NewOperatorService(repository.NewSQLiteOperatorRepo(db))
	cfg := config.DefaultConfig()

	return &App{
		Flow:          flow.NewController(operators),
		Operators:     operators,
		Config:        cfg,
		IsInteractive: func() bool { return false },
		Now:           func() time.Time { return testNow },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inspection.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const replayScript = `
steps:
  - action: login
    username: admin
    password: password123
  - action: submit_main
    general:
      name: Jean
      date: 2024-05-01
      robot: R12
      post: P3
      line: L2
      inspector: Maint
    unchecked: [pressure_current, electrode_reference]
  - action: submit_remediation
    remediations:
      electrode_reference:
        action: Remplacer électrode
        pilot: Ali
        status: DONE
  - action: final_submit
`

// --- Root command ---

func TestRootCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

// --- about / contact ---

func TestAboutCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "about")
	require.NoError(t, err)
	assert.Contains(t, out, "Renault")
}

func TestContactCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "contact")
	require.NoError(t, err)
	assert.Contains(t, out, "support@renaultapp.com")
	assert.Contains(t, out, "+212 600 000 000")
}

func TestStaticCmd_RejectsArgs(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "about", "extra")
	assert.Error(t, err)
}

// --- replay ---

func TestReplayCmd_PrintsStepsAndReport(t *testing.T) {
	app := testApp(t)
	path := writeScript(t, replayScript)

	out, err := executeCmd(t, app, "replay", path)
	require.NoError(t, err)

	assert.Contains(t, out, "login")
	assert.Contains(t, out, flow.NoticeLoggedIn)
	assert.Contains(t, out, flow.NoticeSubmitted)
	assert.Contains(t, out, "Informations Générales")
	assert.Contains(t, out, "Jean")
	assert.Contains(t, out, "Vérifications KO")
	assert.Contains(t, out, "Ali")
}

func TestReplayCmd_YAMLKeepsCatalogOrder(t *testing.T) {
	app := testApp(t)
	path := writeScript(t, replayScript)

	out, err := executeCmd(t, app, "replay", "--yaml", path)
	require.NoError(t, err)

	// Step lines come first; the document starts at "operator:".
	idx := bytes.Index([]byte(out), []byte("operator:"))
	require.GreaterOrEqual(t, idx, 0)

	var doc answersDoc
	require.NoError(t, yaml.Unmarshal([]byte(out[idx:]), &doc))
	assert.Equal(t, testutil.AdminUser, doc.Operator)
	assert.Equal(t, []string{"electrode_reference", "pressure_current"}, doc.KO)
	assert.Equal(t, "Jean", doc.Answers["Nom"])
}

func TestReplayCmd_FailingStep(t *testing.T) {
	app := testApp(t)
	path := writeScript(t, `
steps:
  - action: login
    username: admin
    password: nope
    expect: main
`)

	out, err := executeCmd(t, app, "replay", path)
	require.Error(t, err)
	assert.Contains(t, out, "Nom d'utilisateur ou mot de passe invalide")
}

func TestReplayCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "replay", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// --- operator ---

func TestOperatorCmd_AddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "operator", "add", "bob", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "Operator bob added (bcrypt)")

	out, err = executeCmd(t, app, "operator", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "UTILISATEUR")
	assert.Contains(t, out, testutil.AdminUser)
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "bcrypt")
}

func TestOperatorCmd_AddedOperatorCanReplay(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "operator", "add", "bob", "--password", "s3cret")
	require.NoError(t, err)

	path := writeScript(t, `
steps:
  - action: login
    username: bob
    password: s3cret
    expect: main
`)
	_, err = executeCmd(t, app, "replay", path)
	assert.NoError(t, err)
}

func TestOperatorCmd_AddNeedsPasswordWithoutTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "operator", "add", "bob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--password is required")
}

func TestOperatorCmd_AddDuplicate(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "operator", "add", testutil.AdminUser, "--password", "x")
	assert.Error(t, err)
}
