package extract

import (
	"strconv"
	"strings"
)

// OrderColumns is the fixed output schema, in column order.
var OrderColumns = []string{
	"FORM_NO",
	"IMAGE",
	"SUPPLIER REFERENCE",
	"DESCRIPTION",
	"COLOUR",
	"UNITS",
	"BOOKING FORM DELIVERY",
	"CONFIRMED DELIVERY",
	"VCP",
	"FACTORY",
	"FABRIC COMP",
	"SUSTAINABLE MESSAGE",
	"COST",
	"REMARKS",
}

// OutputRow is one order-details row. IMAGE, FABRIC COMP, SUSTAINABLE
// MESSAGE, and COST stay empty; they are reserved for manual entry
// downstream.
type OutputRow struct {
	FormNo             string `json:"form_no"`
	Image              string `json:"image"`
	SupplierReference  string `json:"supplier_reference"`
	Description        string `json:"description"`
	Colour             string `json:"colour"`
	Units              string `json:"units"`
	BookingDelivery    string `json:"booking_form_delivery"`
	ConfirmedDelivery  string `json:"confirmed_delivery"`
	VCP                string `json:"vcp"`
	Factory            string `json:"factory"`
	FabricComp         string `json:"fabric_comp"`
	SustainableMessage string `json:"sustainable_message"`
	Cost               string `json:"cost"`
	Remarks            string `json:"remarks"`
}

// Values returns the row's cells in OrderColumns order.
func (r OutputRow) Values() []string {
	return []string{
		r.FormNo,
		r.Image,
		r.SupplierReference,
		r.Description,
		r.Colour,
		r.Units,
		r.BookingDelivery,
		r.ConfirmedDelivery,
		r.VCP,
		r.Factory,
		r.FabricComp,
		r.SustainableMessage,
		r.Cost,
		r.Remarks,
	}
}

// Project maps surviving forms onto the fixed output schema. Forms with
// lots emit one row per lot, each carrying the form's base fields with the
// lot's units and dates substituted in; scalar forms emit a single row.
func Project(forms []Form) []OutputRow {
	var rows []OutputRow
	for _, form := range forms {
		if len(form.Lots) == 0 {
			rows = append(rows, projectRecord(form.Number, form.Fields))
			continue
		}
		for _, lot := range form.Lots {
			rec := form.Fields.Clone()
			rec[FieldUnits] = lot.Units
			setOrDelete(rec, FieldShipDate, lot.ShipDate)
			setOrDelete(rec, FieldShipDateFormatted, lot.ShipDateFormatted)
			setOrDelete(rec, FieldWarehouseDate, lot.WarehouseDate)
			setOrDelete(rec, FieldWarehouseDateFormatted, lot.WarehouseFormatted)
			rows = append(rows, projectRecord(form.Number, rec))
		}
	}
	return rows
}

// projectRecord builds one output row from a normalized field record.
func projectRecord(formNo int, rec FieldRecord) OutputRow {
	row := OutputRow{
		FormNo:      strconv.Itoa(formNo),
		Description: rec.Get(FieldDescription),
		VCP:         rec.Get(FieldVCP),
		Remarks:     rec.Get(FieldRemarks),
	}

	row.SupplierReference = strings.ToUpper(rec.Get(FieldReference))

	row.Colour = rec.Get(FieldColor)
	if row.Colour == "" {
		row.Colour = "TBC"
	}

	row.Units = firstPresent(rec, FieldUnits, FieldTotalUnits)

	// Delivery fallback chains, first present wins. The confirmed chain
	// ends on the already-resolved booking delivery value, not on the raw
	// ship date again.
	row.BookingDelivery = firstPresent(rec,
		FieldBookingDeliveryFormatted,
		FieldShipDateFormatted,
		FieldBookingDelivery,
		FieldShipDate,
	)
	row.ConfirmedDelivery = firstPresent(rec,
		FieldConfirmedDeliveryFormatted,
		FieldWarehouseDateFormatted,
		FieldConfirmedDelivery,
		FieldWarehouseDate,
	)
	if row.ConfirmedDelivery == "" {
		row.ConfirmedDelivery = row.BookingDelivery
	}

	row.Factory = rec.Get(FieldFactory)
	if code := rec.Get(FieldFactoryID); code != "" && row.Factory != "" {
		row.Factory += " - " + code
	}

	return row
}

// firstPresent returns the first non-empty value among the keys, in order.
func firstPresent(rec FieldRecord, keys ...FieldKey) string {
	for _, k := range keys {
		if v := rec.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// setOrDelete writes a lot value into the record, or removes the base
// form's value when the lot has none, so a stale scalar date cannot leak
// into a lot row's fallback chain.
func setOrDelete(rec FieldRecord, key FieldKey, value string) {
	if value == "" {
		delete(rec, key)
		return
	}
	rec[key] = value
}
