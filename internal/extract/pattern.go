package extract

// FieldPattern maps a field to its ordered candidate label substrings.
// Label matching is case-insensitive containment against the trimmed cell
// text; list order encodes preference and outranks window position.
type FieldPattern struct {
	Field  FieldKey
	Labels []string
}

// DefaultPatterns is the ordered rule table for label-search extraction.
// Field order fixes the extraction order; within a field, earlier labels
// win over later ones regardless of where in the window they match.
//
// More specific labels come before generic ones ("supplier reference"
// before "reference") so the generic substring cannot capture a sibling
// field's label cell first.
func DefaultPatterns() []FieldPattern {
	return []FieldPattern{
		{Field: FieldDescription, Labels: []string{"description", "desc"}},
		{Field: FieldSupplierReference, Labels: []string{"supplier reference", "supplier ref"}},
		{Field: FieldOriginalReference, Labels: []string{"original reference", "orig ref"}},
		{Field: FieldReference, Labels: []string{"booking ref", "reference"}},
		{Field: FieldColor, Labels: []string{"colour", "color"}},
		{Field: FieldTotalUnits, Labels: []string{"total units", "total qty"}},
		{Field: FieldUnits, Labels: []string{"units", "qty"}},
		{Field: FieldVCP, Labels: []string{"vcp"}},
		{Field: FieldFactory, Labels: []string{"factory name", "factory"}},
		{Field: FieldBookingDelivery, Labels: []string{"booking form delivery", "bf delivery"}},
		{Field: FieldConfirmedDelivery, Labels: []string{"confirmed delivery", "confirmed del"}},
		{Field: FieldShipDate, Labels: []string{"ship date", "ship"}},
		{Field: FieldWarehouseDate, Labels: []string{"warehouse date", "whs date", "whs"}},
		{Field: FieldRemarks, Labels: []string{"remarks", "comments"}},
	}
}
