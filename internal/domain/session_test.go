package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession()

	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Authenticated)
	assert.Equal(t, PageMain, s.CurrentPage)
	assert.Equal(t, MenuHome, s.CurrentMenu)
	assert.Empty(t, s.KOChecks)
	assert.Empty(t, s.Answers)
}

func TestSession_GetMissingKeyIsEmpty(t *testing.T) {
	s := NewSession()
	assert.Equal(t, "", s.Get(GeneralKey(FieldName)))
	assert.Equal(t, "", s.Get(ItemKey(CheckWaterFlow, FieldPilot)))
}

func TestSession_SetOverwrites(t *testing.T) {
	s := NewSession()
	s.Set(GeneralKey(FieldRobot), "R1")
	s.Set(GeneralKey(FieldRobot), "R2")
	assert.Equal(t, "R2", s.Get(GeneralKey(FieldRobot)))
}

func TestSession_ResetRestoresDefaults(t *testing.T) {
	s := NewSession()
	oldID := s.ID
	s.Authenticated = true
	s.Operator = "admin"
	s.CurrentPage = PageSummary
	s.CurrentMenu = MenuContact
	s.KOChecks = []ChecklistItemID{CheckWaterFlow}
	s.Set(GeneralKey(FieldName), "Jean")

	s.Reset()

	assert.NotEqual(t, oldID, s.ID)
	assert.False(t, s.Authenticated)
	assert.Empty(t, s.Operator)
	assert.Equal(t, PageMain, s.CurrentPage)
	assert.Equal(t, MenuHome, s.CurrentMenu)
	assert.Empty(t, s.KOChecks)
	assert.Empty(t, s.Answers)
}

func TestSession_ReplaceKOChecks_PurgesStaleRemediation(t *testing.T) {
	s := NewSession()
	s.Answers.SetRemediation(CheckWaterFlow, Remediation{Action: "purger", Status: StatusDone})
	s.Answers.SetRemediation(CheckWeldProgram, Remediation{Action: "recharger"})
	s.Answers.SetVerified(CheckWaterFlow, false)

	s.ReplaceKOChecks([]ChecklistItemID{CheckWeldProgram}, true)

	assert.Equal(t, Remediation{}, s.Answers.Remediation(CheckWaterFlow))
	assert.Equal(t, "recharger", s.Answers.Remediation(CheckWeldProgram).Action)
	assert.Equal(t, "false", s.Get(ItemKey(CheckWaterFlow, FieldVerified)), "verified flag survives purge")
}

func TestSession_ReplaceKOChecks_KeepsStaleRemediation(t *testing.T) {
	s := NewSession()
	s.Answers.SetRemediation(CheckWaterFlow, Remediation{Action: "purger"})

	s.ReplaceKOChecks(nil, false)

	assert.Empty(t, s.KOChecks)
	assert.Equal(t, "purger", s.Answers.Remediation(CheckWaterFlow).Action)
}

func TestFieldKey_LegacyStrings(t *testing.T) {
	tests := []struct {
		key  FieldKey
		want string
	}{
		{GeneralKey(FieldName), "Nom"},
		{GeneralKey(FieldLine), "Ligne"},
		{GeneralKey(FieldInspector), "Qui vérifie"},
		{ItemKey(CheckPressureCurrent, FieldAction), "Action_Contrôler Pression et Intensité"},
		{ItemKey(CheckPressureCurrent, FieldPilot), "Pilote_Contrôler Pression et Intensité"},
		{ItemKey(CheckPressureCurrent, FieldDeadline), "Délai_Contrôler Pression et Intensité"},
		{ItemKey(CheckPressureCurrent, FieldStatus), "État_Contrôler Pression et Intensité"},
		{ItemKey(CheckPressureCurrent, FieldValidation), "Validation_CA_Contrôler Pression et Intensité"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

func TestFieldKey_NoCollisionBetweenItems(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range Items() {
		for _, f := range RemediationFields {
			k := ItemKey(item.ID, f).String()
			require.False(t, seen[k], "collision on %q", k)
			seen[k] = true
		}
	}
}

func TestAnswers_GeneralRoundTrip(t *testing.T) {
	a := make(Answers)
	g := GeneralInfo{Name: "Jean", Date: "2024-05-01", Robot: "R12", Post: "P3", Line: "L2", Inspector: RoleOP}
	a.SetGeneral(g)
	assert.Equal(t, g, a.General())

	flat := a.Flat()
	assert.Equal(t, "Jean", flat["Nom"])
	assert.Equal(t, "OP", flat["Qui vérifie"])
}

func TestNormalize_AppliesSelectDefaults(t *testing.T) {
	assert.Equal(t, RoleFAB, GeneralInfo{}.Normalize().Inspector)
	assert.Equal(t, RoleMaint, GeneralInfo{Inspector: RoleMaint}.Normalize().Inspector)
	assert.Equal(t, StatusInProgress, Remediation{}.Normalize().Status)
	assert.Equal(t, StatusDone, Remediation{Status: StatusDone}.Normalize().Status)
}

func TestEnums_Labels(t *testing.T) {
	assert.Equal(t, "En cours", StatusInProgress.Label())
	assert.Equal(t, "Terminé", StatusDone.Label())
	assert.Equal(t, "Accueil", MenuHome.Label())
	assert.Equal(t, "À propos", MenuAbout.Label())
	assert.True(t, RoleMaint.Valid())
	assert.False(t, InspectorRole("boss").Valid())
	assert.False(t, RemediationStatus("LATER").Valid())
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "a", Coalesce("", "a", "b"))
	assert.Equal(t, RoleOP, Coalesce(RoleOP, RoleFAB))
	assert.Equal(t, RoleFAB, Coalesce("", RoleFAB))
	assert.Equal(t, "", Coalesce[string]())
}
