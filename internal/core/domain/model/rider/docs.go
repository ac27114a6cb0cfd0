// Package rider implements the delivery rider aggregate: identity, contact
// phone, a live availability flag, and the last reported location sample.
// Availability is the server-side guard for order assignment; location
// samples are ephemeral display state relayed to tracking views.
package rider
