// Package pathabs provides an absolute filesystem path value that serializes
// losslessly as a single text scalar.
//
// A Path is validated on construction: it must be absolute and must exist.
// Its serialized form is the escaped native representation produced by
// package escape, so paths holding non-UTF-8 bytes (or unpaired surrogates
// on Windows) survive JSON, YAML, TOML and SQL text columns bit for bit.
//
// The same Path implements encoding.TextMarshaler, json.Marshaler,
// yaml.Marshaler and driver.Valuer along with their decoding counterparts.
// All of them go through Serialize and Deserialize.
package pathabs
