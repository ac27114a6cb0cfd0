// Package order implements the cash-on-delivery order aggregate and its
// lifecycle state machine.
//
// An order coordinates three actors through a shared record: the seller
// (pharmacy or wholesaler) confirms and prepares it, a rider picks it up and
// delivers it, and the buyer receives it and pays cash at the door. The
// Status state machine is the single source of truth for which action is
// currently valid; every transition method validates the current state and
// either advances the order or fails without side effects.
//
// Side effects that accompany transitions (stock re-credit on rejection or
// delivery failure, notification dispatch) are owned by the application layer
// and executed in the same transaction as, or after, the guarded status
// update. The aggregate itself stays free of infrastructure concerns.
package order
