// Package record decodes individual FDR trace log records.
//
// Every record begins with a tag byte. Bit 0 discriminates the two record
// families: a 1 marks a metadata record whose kind is encoded in bits 1-7,
// a 0 marks a function-call record. Metadata records occupy the tag byte
// plus a fixed 15-byte body; custom and typed event records additionally
// carry a variable-length payload after the body. Function records occupy
// 8 bytes including the tag byte.
//
// # Decoding one record
//
// The Producer drives the per-record state machine: it reads the tag byte,
// resolves the record variant (version-gated for metadata records), and
// invokes the field decoder for that variant:
//
//	cur := cursor.New(buffer)
//	producer := record.NewProducer(version, cur)
//	rec, err := producer.Produce()
//
// Each call produces exactly one record or one error, never both. On
// success the cursor lands exactly on the next record boundary; on failure
// the session is expected to be abandoned, no resynchronization is
// attempted.
//
// Records are allocated empty with their kind fixed, populated exactly
// once, and handed to the caller with ownership transferred. They are never
// mutated or reused afterwards.
package record
