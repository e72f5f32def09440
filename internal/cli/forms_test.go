package cli

import (
	"testing"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/alexanderramin/pincecheck/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainFields_DefaultsDateToToday(t *testing.T) {
	f := newMainFields(domain.NewSession(), "2024-05-01")

	assert.Equal(t, "2024-05-01", f.date)
	assert.Equal(t, domain.RoleFAB, f.inspector)
	assert.Empty(t, f.verified)
}

func TestMainFields_PrefillFromAnswers(t *testing.T) {
	s := domain.NewSession()
	g := testutil.NewTestGeneral(testutil.WithInspector(domain.RoleMaint))
	s.Answers.SetGeneral(g)
	s.Answers.SetVerified(domain.CheckWeldProgram, true)
	s.Answers.SetVerified(domain.CheckWaterFlow, false)

	f := newMainFields(s, "2030-01-01")

	assert.Equal(t, g.Name, f.name)
	assert.Equal(t, g.Date, f.date)
	assert.Equal(t, domain.RoleMaint, f.inspector)
	assert.Equal(t, []domain.ChecklistItemID{domain.CheckWeldProgram}, f.verified)
}

func TestMainFields_Action(t *testing.T) {
	f := &mainFields{
		name:      "Jean",
		date:      "2024-05-01",
		inspector: domain.RoleOP,
		verified:  []domain.ChecklistItemID{domain.CheckWaterFlow},
	}

	a, ok := f.action().(flow.SubmitMain)
	require.True(t, ok)
	assert.Equal(t, "Jean", a.General.Name)
	assert.Equal(t, domain.RoleOP, a.General.Inspector)
	assert.True(t, a.Verified[domain.CheckWaterFlow])
	assert.False(t, a.Verified[domain.CheckWeldProgram])
}

func TestKOFields_OneEntryPerKOItem(t *testing.T) {
	s := domain.NewSession()
	s.KOChecks = []domain.ChecklistItemID{domain.CheckElectrodeWear, domain.CheckPressureCurrent}
	s.Answers.SetRemediation(domain.CheckPressureCurrent, testutil.NewTestRemediation())

	f := newKOFields(s, "2024-05-01")
	require.Len(t, f.entries, 2)

	assert.Equal(t, domain.CheckElectrodeWear, f.entries[0].id)
	assert.Equal(t, "2024-05-01", f.entries[0].deadline)
	assert.Equal(t, domain.StatusInProgress, f.entries[0].status)
	assert.Equal(t, testutil.NewTestRemediation().Action, f.entries[1].action)

	a, ok := f.action().(flow.SubmitRemediation)
	require.True(t, ok)
	assert.Len(t, a.Remediations, 2)
	assert.Equal(t, "2024-05-01", a.Remediations[domain.CheckElectrodeWear].Deadline)
}

func TestKOForm_NilWithoutEntries(t *testing.T) {
	assert.Nil(t, koForm(&koFields{}))
}

func TestValidateOptionalDate(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2024-02-29"))
	assert.Error(t, validateOptionalDate("29/02/2024"))
}
