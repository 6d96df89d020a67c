package plonk

// Rotation is a signed subgroup rotation amount, e.g. Rotation(-1) names the
// row immediately before the current one on the original (non-extended)
// domain.
type Rotation int32

// RotIdx returns the index in a polynomial of size isize after rotating idx
// by r subgroup-rotations, each worth rotScale extended-domain steps:
//
//	rot_idx(idx, r) = (idx + r*rotScale) mod isize
//
// taken as a nonnegative remainder, matching get_rotation_idx in the
// original evaluator.
func RotIdx(idx int, r Rotation, rotScale, isize int32) int {
	shifted := int32(idx) + int32(r)*rotScale
	m := shifted % isize
	if m < 0 {
		m += isize
	}
	return int(m)
}
