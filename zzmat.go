/*
Package zzmat provides dense matrices over arbitrary-precision integers,
intended as the basis container for lattice-reduction algorithms (LLL, BKZ),
together with deterministic generators of structured random lattice bases
(knapsack-type integer relations, simultaneous diophantine approximation,
NTRU-like, q-ary and Ajtai-type bases).

The matrix core lives in the matrix package and the basis generators in the
lattice package; both draw on the deterministic PRNG and arbitrary-precision
helpers under utils.
*/
package zzmat
