package domain

import "fmt"

// ChecklistItemID is the stable identifier of a checklist entry.
// Values start at 1 so the zero value means "no item" (general fields).
type ChecklistItemID int

const (
	CheckElectrodeReference ChecklistItemID = iota + 1
	CheckElectrodeWear
	CheckDressingQuality
	CheckElectrodeChangeFrequency
	CheckDresserCleanliness
	CheckDresserRotation
	CheckSheetFitUp
	CheckGunPerpendicularity
	CheckWaterFlow
	CheckCoolingTubeCut
	CheckPressureCurrent
	CheckWeldProgram
	CheckPhaseShiftLaw
	CheckDressingParameters
)

// ChecklistItem is one fixed inspection point of the welding clamp checklist.
type ChecklistItem struct {
	ID   ChecklistItemID
	Slug string // used by replay scripts and logs
	Text string
}

// catalog is ordered; order drives both rendering and the KO list.
var catalog = []ChecklistItem{
	{CheckElectrodeReference, "electrode_reference", "Vérifier la bonne référence des électrodes"},
	{CheckElectrodeWear, "electrode_wear", "Vérifier l'état des électrodes en fin de vie"},
	{CheckDressingQuality, "dressing_quality", "Vérifier la qualité de ragéage des électrodes (aspect, alignement) et référence de la fraise (face active)"},
	{CheckElectrodeChangeFrequency, "electrode_change_frequency", "Vérifier la fréquence changement électrodes"},
	{CheckDresserCleanliness, "dresser_cleanliness", "Vérifier la propreté de la fraise (Bourrage fraise, clipsage)"},
	{CheckDresserRotation, "dresser_rotation", "Vérifier le sens de rotation roueuse"},
	{CheckSheetFitUp, "sheet_fit_up", "Vérifier l'accostage des tôles et la propreté de la zone (Mastic, peinture, etc.)"},
	{CheckGunPerpendicularity, "gun_perpendicularity", "Vérifier la perpendicularité de la pince par rapport à la tôle au point de soudure"},
	{CheckWaterFlow, "water_flow", "Vérifier le débit d'eau (lecture sur le computer)"},
	{CheckCoolingTubeCut, "cooling_tube_cut", "Vérifier que l'extrémité du tube de refroidissement est coupée à un angle de 45°"},
	{CheckPressureCurrent, "pressure_current", "Contrôler Pression et Intensité"},
	{CheckWeldProgram, "weld_program", "Contrôler le programme soudeur par rapport à la fiche paramètre"},
	{CheckPhaseShiftLaw, "phase_shift_law", "Contrôler la loi de déphasage par rapport à la fiche paramètre"},
	{CheckDressingParameters, "dressing_parameters", "Vérifier les paramètres de ragéage des électrodes (Fréquence et paramètre rodage)"},
}

// Items returns the checklist in catalog order. The returned slice is a copy.
func Items() []ChecklistItem {
	out := make([]ChecklistItem, len(catalog))
	copy(out, catalog)
	return out
}

// ItemCount returns the number of checklist entries.
func ItemCount() int { return len(catalog) }

// Item looks up a checklist entry by id.
func Item(id ChecklistItemID) (ChecklistItem, error) {
	if id < 1 || int(id) > len(catalog) {
		return ChecklistItem{}, fmt.Errorf("checklist item %d: %w", int(id), ErrUnknownItem)
	}
	return catalog[id-1], nil
}

// MustItem is Item for ids that come from the catalog itself.
// A miss means an invariant was broken upstream, so it panics.
func MustItem(id ChecklistItemID) ChecklistItem {
	item, err := Item(id)
	if err != nil {
		panic(err)
	}
	return item
}

// ItemBySlug resolves a slug such as "water_flow" to its catalog entry.
func ItemBySlug(slug string) (ChecklistItem, error) {
	for _, item := range catalog {
		if item.Slug == slug {
			return item, nil
		}
	}
	return ChecklistItem{}, fmt.Errorf("checklist item %q: %w", slug, ErrUnknownItem)
}

// Text returns the display text of the item, or "" for an unknown id.
func (id ChecklistItemID) Text() string {
	item, err := Item(id)
	if err != nil {
		return ""
	}
	return item.Text
}

func (id ChecklistItemID) String() string {
	item, err := Item(id)
	if err != nil {
		return fmt.Sprintf("item(%d)", int(id))
	}
	return item.Slug
}
