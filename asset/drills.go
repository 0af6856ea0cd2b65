package asset

// DefaultDrills is the built-in drill pack used when no pack file is given
const DefaultDrills = `
# Each [[round]] needs exactly one target: target_row/target_col,
# target_selection, or target_text

[[round]]
name = "word hop"
text = "the quick brown fox jumps"
target_row = 0
target_col = 16
budget_ms = 8000
par = 2

[[round]]
name = "line end"
text = "let total = price * qty;"
target_row = 0
target_col = 23
budget_ms = 6000
par = 1

[[round]]
name = "find char"
text = "call(alpha, beta, gamma)"
target_row = 0
target_col = 18
budget_ms = 6000
par = 2

[[round]]
name = "down and in"
text = """
func main() {
	fmt.Println("hi")
}"""
target_row = 1
target_col = 14
budget_ms = 10000
par = 3

[[round]]
name = "empty the call"
text = "result := compute(a, b, c)"
start_col = 18
target_text = "result := compute()"
budget_ms = 8000
par = 3

[[round]]
name = "drop a line"
text = """
keep
drop
keep too"""
start_row = 1
target_text = """
keep
keep too"""
budget_ms = 6000
par = 2

[[round]]
name = "select block"
text = """
a
b
c
d"""
target_selection = { kind = "line", start_row = 1, end_row = 2 }
budget_ms = 8000
par = 3

[[round]]
name = "select word"
text = "say hello there"
start_col = 5
target_selection = { kind = "char", start_row = 0, start_col = 4, end_row = 0, end_col = 8 }
budget_ms = 8000
par = 3

[[round]]
name = "new value"
text = 'name = "old"'
target_text = 'name = "new"'
insert_mode = true
budget_ms = 12000
par = 7
`
