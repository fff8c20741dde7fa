// Package raw exposes a per-entity-type decode entry point returning the
// concrete entity records, for tooling and diagnostics. Arc and Insert
// records carry the as-read radian values (StartAngleRad, EndAngleRad,
// RotationRad) alongside their degree-normalized angle fields.
package raw
