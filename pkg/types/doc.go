// Package types provides the entity model of the on-prem SDK.
//
// Entities (Dataset, Data, Slice, Model, Diagnosis, AnalyticsReport, ...)
// are plain structs whose json tags declare the camelCase wire names.
// Missing keys decode to zero values and unknown keys are ignored.
//
// Closed enums validate on marshal and unmarshal and return
// *errors.ValidationError for values outside their set. Free-form fields
// use JSON, which keeps the raw bytes and key order.
//
// Field is the tri-state used by update operations to tell "not supplied"
// from "set to null".
package types
