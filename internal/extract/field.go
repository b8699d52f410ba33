// Package extract implements the booking form extraction engine: it locates
// form blocks inside an undifferentiated cell grid, recovers named fields by
// fuzzy label matching or fixed addressing, normalizes values and dates, and
// projects the surviving forms onto the fixed order-details output schema.
package extract

// FieldKey is a closed enumeration of the fields the engine can capture.
// Using typed keys instead of bare strings keeps typo-class lookup bugs out
// of the field maps.
type FieldKey string

const (
	FieldDescription       FieldKey = "Description"
	FieldReference         FieldKey = "Reference"
	FieldOriginalReference FieldKey = "Original Reference"
	FieldSupplierReference FieldKey = "Supplier Reference"
	FieldColor             FieldKey = "Color"
	FieldColorCode         FieldKey = "Color Code"
	FieldUnits             FieldKey = "Units"
	FieldTotalUnits        FieldKey = "Total Units"
	FieldVCP               FieldKey = "VCP"
	FieldFactory           FieldKey = "Factory"
	FieldFactoryID         FieldKey = "Factory ID"
	FieldBookingDelivery   FieldKey = "Booking Form Delivery"
	FieldConfirmedDelivery FieldKey = "Confirmed Delivery"
	FieldShipDate          FieldKey = "Ship Date"
	FieldWarehouseDate     FieldKey = "Warehouse Date"
	FieldRemarks           FieldKey = "Remarks"

	// Derived companions appended during aggregation.
	FieldBookingDeliveryFormatted   FieldKey = "Booking Form Delivery Formatted"
	FieldConfirmedDeliveryFormatted FieldKey = "Confirmed Delivery Formatted"
	FieldShipDateFormatted          FieldKey = "Ship Date Formatted"
	FieldWarehouseDateFormatted     FieldKey = "Warehouse Date Formatted"
)

// dateFields lists the date-bearing fields that receive a formatted
// companion during aggregation.
var dateFields = map[FieldKey]FieldKey{
	FieldBookingDelivery:   FieldBookingDeliveryFormatted,
	FieldConfirmedDelivery: FieldConfirmedDeliveryFormatted,
	FieldShipDate:          FieldShipDateFormatted,
	FieldWarehouseDate:     FieldWarehouseDateFormatted,
}

// FieldRecord maps captured fields to their raw extracted text. Absent keys
// mean the field was not located; that is never an error.
type FieldRecord map[FieldKey]string

// Get returns the field value, or "" if absent.
func (r FieldRecord) Get(key FieldKey) string {
	return r[key]
}

// Clone returns a shallow copy of the record.
func (r FieldRecord) Clone() FieldRecord {
	out := make(FieldRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Usable reports whether the record captured at least one value that is not
// a missing-sentinel. Forms with no usable fields are dropped entirely.
func (r FieldRecord) Usable() bool {
	for _, v := range r {
		if !IsMissing(v) {
			return true
		}
	}
	return false
}

// Lot is one shipment sub-record of a multi-column form layout: a units
// count plus its ship and warehouse dates for a single data column.
type Lot struct {
	Number             int
	Units              string
	ShipDate           string
	ShipDateFormatted  string
	WarehouseDate      string
	WarehouseFormatted string
	ExFactory          string
}

// Form is one extracted booking form: its sequence number, captured fields,
// and any shipment lots the layout encoded.
type Form struct {
	Number int
	Fields FieldRecord
	Lots   []Lot
}
