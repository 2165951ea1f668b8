/*
Package session manages the histories of many independent documents.

Each document owns its own history.History. The Manager funnels every command
for a document through a per-document lock (reference counted, so idle
documents hold no lock state), loads the current history from a ports.Store,
applies the transition and stores the result. Commands against different
documents never block each other.
*/
package session
