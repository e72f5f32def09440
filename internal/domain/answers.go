package domain

// DateLayout is the storage format of every date answer.
const DateLayout = "2006-01-02"

// Field is a sub-field of an answer. General fields use the legacy key as
// their value; per-item fields use the legacy key prefix.
type Field string

const (
	FieldName      Field = "Nom"
	FieldDate      Field = "Date"
	FieldRobot     Field = "Robot"
	FieldPost      Field = "Post"
	FieldLine      Field = "Ligne"
	FieldInspector Field = "Qui vérifie"

	FieldVerified   Field = "Vérifié"
	FieldAction     Field = "Action"
	FieldPilot      Field = "Pilote"
	FieldDeadline   Field = "Délai"
	FieldStatus     Field = "État"
	FieldValidation Field = "Validation_CA"
)

// GeneralFields lists the general information fields in report order.
var GeneralFields = []Field{FieldName, FieldDate, FieldRobot, FieldPost, FieldLine, FieldInspector}

// RemediationFields lists the per-KO-item fields in report order.
var RemediationFields = []Field{FieldAction, FieldPilot, FieldDeadline, FieldStatus, FieldValidation}

// FieldKey addresses one answer. Item is zero for general fields.
type FieldKey struct {
	Item  ChecklistItemID
	Field Field
}

// GeneralKey returns the key of a general field.
func GeneralKey(f Field) FieldKey { return FieldKey{Field: f} }

// ItemKey returns the key of a per-item field.
func ItemKey(id ChecklistItemID, f Field) FieldKey { return FieldKey{Item: id, Field: f} }

// IsGeneral reports whether the key is not bound to a checklist item.
func (k FieldKey) IsGeneral() bool { return k.Item == 0 }

// String renders the flat legacy key, e.g. "Ligne" or
// "Pilote_Contrôler Pression et Intensité".
func (k FieldKey) String() string {
	if k.IsGeneral() {
		return string(k.Field)
	}
	return string(k.Field) + "_" + MustItem(k.Item).Text
}

// Answers accumulates every value typed during a session.
type Answers map[FieldKey]string

// Get returns the value for key, or "" when unset.
func (a Answers) Get(key FieldKey) string {
	return a[key]
}

// Set overwrites the value for key.
func (a Answers) Set(key FieldKey, value string) {
	a[key] = value
}

// Flat returns the answers keyed by their legacy string keys.
func (a Answers) Flat() map[string]string {
	out := make(map[string]string, len(a))
	for k, v := range a {
		out[k.String()] = v
	}
	return out
}

// purgeRemediation drops the remediation fields recorded for one item.
// The verified flag is kept so the checkbox state survives.
func (a Answers) purgeRemediation(id ChecklistItemID) {
	for _, f := range RemediationFields {
		delete(a, ItemKey(id, f))
	}
}

// GeneralInfo is the typed view of the general fields of the MAIN form.
type GeneralInfo struct {
	Name      string
	Date      string
	Robot     string
	Post      string
	Line      string
	Inspector InspectorRole
}

// Normalize fills the select default for an empty inspector role.
func (g GeneralInfo) Normalize() GeneralInfo {
	g.Inspector = Coalesce(g.Inspector, InspectorRoles[0])
	return g
}

// Remediation is the action plan recorded for a single KO item.
type Remediation struct {
	Action     string
	Pilot      string
	Deadline   string
	Status     RemediationStatus
	Validation string
}

// Normalize fills the select default for an empty status.
func (r Remediation) Normalize() Remediation {
	r.Status = Coalesce(r.Status, RemediationStatuses[0])
	return r
}

// General reads the general fields back into a GeneralInfo.
func (a Answers) General() GeneralInfo {
	return GeneralInfo{
		Name:      a.Get(GeneralKey(FieldName)),
		Date:      a.Get(GeneralKey(FieldDate)),
		Robot:     a.Get(GeneralKey(FieldRobot)),
		Post:      a.Get(GeneralKey(FieldPost)),
		Line:      a.Get(GeneralKey(FieldLine)),
		Inspector: InspectorRole(a.Get(GeneralKey(FieldInspector))),
	}
}

// SetGeneral overwrites all general fields.
func (a Answers) SetGeneral(g GeneralInfo) {
	a.Set(GeneralKey(FieldName), g.Name)
	a.Set(GeneralKey(FieldDate), g.Date)
	a.Set(GeneralKey(FieldRobot), g.Robot)
	a.Set(GeneralKey(FieldPost), g.Post)
	a.Set(GeneralKey(FieldLine), g.Line)
	a.Set(GeneralKey(FieldInspector), string(g.Inspector))
}

// Remediation reads the remediation fields of one item.
func (a Answers) Remediation(id ChecklistItemID) Remediation {
	return Remediation{
		Action:     a.Get(ItemKey(id, FieldAction)),
		Pilot:      a.Get(ItemKey(id, FieldPilot)),
		Deadline:   a.Get(ItemKey(id, FieldDeadline)),
		Status:     RemediationStatus(a.Get(ItemKey(id, FieldStatus))),
		Validation: a.Get(ItemKey(id, FieldValidation)),
	}
}

// SetRemediation overwrites the remediation fields of one item.
func (a Answers) SetRemediation(id ChecklistItemID, r Remediation) {
	a.Set(ItemKey(id, FieldAction), r.Action)
	a.Set(ItemKey(id, FieldPilot), r.Pilot)
	a.Set(ItemKey(id, FieldDeadline), r.Deadline)
	a.Set(ItemKey(id, FieldStatus), string(r.Status))
	a.Set(ItemKey(id, FieldValidation), r.Validation)
}

// Verified reports whether the item checkbox was ticked at the last MAIN submission.
func (a Answers) Verified(id ChecklistItemID) bool {
	return a.Get(ItemKey(id, FieldVerified)) == "true"
}

// SetVerified records the checkbox state of one item.
func (a Answers) SetVerified(id ChecklistItemID, verified bool) {
	v := "false"
	if verified {
		v = "true"
	}
	a.Set(ItemKey(id, FieldVerified), v)
}
