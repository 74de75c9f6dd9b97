/* Package calcpad is a keypress-driven equation editor with an evaluator
and a display formatter.

Each logical keypress -- digit, operator, postfix modifier, function,
decimal point, bracket, delete, sign change, undo, equals -- mutates an
in-memory token sequence under a small grammar, so the buffer is always in
a state that can be evaluated or edited further. A keypress never inserts
blindly: depending on the class of the last token it starts a new token,
merges into it, replaces it, rewrites its neighbors, or is refused.

Numeric literals cap at nine numerals. A negative literal takes the
wrapped form (-n), distinct from a leading unary minus, so sign toggling
and digit merging stay unambiguous. Every structural mutation records a
snapshot in a bounded undo log; undo reinstalls the prior state, and the
log deliberately survives a clear.

Evaluation walks the typed token sequence directly with precedence
climbing: ^ binds tightest of the binary operators and to the right, then
* and /, then + and -; unary minus binds tighter than any binary operator
and postfix modifiers tightest of all. Functions take one bracketed
argument. A literal zero divisor is refused before evaluation begins, a
nine-significant-digit formatter renders the result, and scientific
notation takes over when fixed notation cannot carry the value.

A successful equals press leaves the editor in a calculated state: the
next digit or operator starts a new equation seeded with the result, and a
repeated equals chains the previous answer in as the left operand.

The cmd/calcpad command wires the editor to a line-oriented front end, and
the display package renders token snapshots with locale digit grouping.
*/
package calcpad
