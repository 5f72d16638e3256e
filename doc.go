/*
Package ifc implements a typed entity store for IFC models and a lossless
reader/writer for the ISO 10303-21 text format ("STEP physical file") they
are exchanged in.

We implement:

1. Records, Go values of arbitrarily many kinds, each knowing its keyword
and how to parse and render its own attribute list.

2. A Store, one heterogeneous container per document mapping identifiers to
records, with typed access via generics (Get, Insert, Remove).

3. References: Ref[T] points at a stored record of a statically known kind,
RefOr[T] is either such a reference or a pending value that gets inserted
into the store the first time it is turned into a reference.

4. Documents, which pair a Store with a header and an identifier allocator,
and parse/render whole files.

# Technical Details

**Records.**
A record's text form is `#<id>=<KEYWORD>(<attrs>);`. The record itself only
deals with `<attrs>`; the document driver handles the rest. Kinds that the
IFC schema defines as specializations (IfcWall → IfcBuildingElement → … →
IfcRoot) embed their general kind as a component and splice its attribute
span in front of their own, both when parsing and when rendering.

**Type erasure.**
The store holds values behind the Record interface. Typed access is a checked
type assertion; asking for the wrong kind, or for an identifier that does not
exist, is a programming error and panics with *KindError. Use TryGet when the
input is untrusted (e.g. a validation pass over a freshly parsed file).

**Identifiers.**
Identifiers are positive integers. The allocator always hands out an
identifier greater than every identifier the store has ever seen, including
ones read from text or inserted explicitly, and never reuses removed ones.

**Canonical form.**
Rendering produces a canonical text: no whitespace between tokens, one record
per line, reals in shortest form with a mandatory decimal point. Parsing a
canonical text and rendering it again reproduces it byte for byte.

**Concurrency.**
None. A Document is owned by one goroutine at a time.
*/
package ifc
