// Package shipment provides domain entities and business logic for shipment
// lifecycle management in the tracking system. It implements the Shipment
// aggregate root with the status state machine and the derived audit trail.
//
// The package includes:
//   - Shipment: The aggregate root that owns the lifecycle and the audit collections
//   - Status: A state machine that enforces valid status transitions
//   - ServiceType: The freight service classification
//   - StatusHistoryItem, Checkpoint, Note: Immutable append-only audit records
//
// Key business rules:
//   - Shipments are created in Pending with a seeded history entry
//   - Status follows the lifecycle graph: Pending -> Quoted -> Accepted ->
//     PickedUp -> InTransit -> Delivered, with Cancelled reachable from every
//     non-terminal state except InTransit
//   - Delivered and Cancelled are terminal and accept no further transitions
//   - The current status always equals the last status history entry
//   - Audit collections are append-only and their records immutable
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
