// Package services contains domain services that coordinate multiple
// aggregates without belonging to either: currently the rider assignment
// guard, which validates a seller-chosen rider against live availability
// before attaching them to an order.
package services
