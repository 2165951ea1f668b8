/*
Package ports defines the driven ports (interfaces) for rewind owners.

These interfaces decouple the session manager from the place documents live,
so the same dispatch logic works with any registry.

# Key Interfaces

  - Store: Holds the History of each document, keyed by document ID.
  - DistributedLocker: Optional cross-replica locking for the session manager.
*/
package ports
