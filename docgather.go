// Package docgather collects documentation from heterogeneous sources
// (ReadTheDocs-style sites, GitHub repositories, arbitrary websites) and
// normalizes it into a uniform document collection for downstream
// retrieval and question-answering systems.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, yaml/).
package docgather
