package token

// keywords is the set of SystemVerilog reserved words the lexer
// recognizes as Keyword tokens rather than Identifier tokens. It is not
// exhaustive of the IEEE 1800 keyword list; it covers the keywords the
// context rewriter and spacing annotator need to dispatch on, plus the
// common declaration/statement vocabulary exercised by the test corpus.
var keywords = map[string]struct{}{
	"module": {}, "endmodule": {}, "interface": {}, "endinterface": {},
	"package": {}, "endpackage": {}, "program": {}, "endprogram": {},
	"class": {}, "endclass": {}, "function": {}, "endfunction": {},
	"task": {}, "endtask": {}, "property": {}, "endproperty": {},
	"sequence": {}, "endsequence": {}, "clocking": {}, "endclocking": {},
	"generate": {}, "endgenerate": {}, "specify": {}, "endspecify": {},
	"extern": {}, "virtual": {}, "pure": {}, "static": {}, "automatic": {},
	"initial": {}, "always": {}, "always_comb": {}, "always_ff": {}, "always_latch": {},
	"final": {},
	"if": {}, "else": {}, "case": {}, "casex": {}, "casez": {}, "endcase": {},
	"for": {}, "foreach": {}, "while": {}, "do": {}, "repeat": {}, "forever": {},
	"begin": {}, "end": {}, "fork": {}, "join": {}, "join_any": {}, "join_none": {},
	"disable": {}, "wait": {}, "wait_order": {},
	"input": {}, "output": {}, "inout": {}, "ref": {},
	"logic": {}, "wire": {}, "reg": {}, "bit": {}, "byte": {}, "int": {}, "integer": {},
	"shortint": {}, "longint": {}, "real": {}, "realtime": {}, "time": {}, "string": {},
	"enum": {}, "struct": {}, "union": {}, "typedef": {}, "parameter": {}, "localparam": {},
	"packed": {}, "unpacked": {}, "signed": {}, "unsigned": {},
	"assign": {}, "deassign": {}, "force": {}, "release": {},
	"posedge": {}, "negedge": {}, "edge": {},
	"randomize": {}, "with": {}, "rand": {}, "randc": {}, "constraint": {},
	"inside": {}, "dist": {}, "solve": {}, "before": {},
	"assert": {}, "assume": {}, "cover": {}, "restrict": {}, "expect": {},
	"return": {}, "break": {}, "continue": {},
	"new": {}, "this": {}, "super": {}, "null": {},
	"import": {}, "export": {}, "default": {},
	"timeunit": {}, "timeprecision": {},
	"modport": {}, "genvar": {}, "generate_block": {},
	"and": {}, "or": {}, "not": {}, "nand": {}, "nor": {}, "xor": {}, "xnor": {},
	"buf": {}, "bufif0": {}, "bufif1": {}, "notif0": {}, "notif1": {},
}

// LookupKeyword reports whether text names a reserved word: a plain set
// lookup, since SystemVerilog keywords are case-sensitive and always
// lowercase.
func LookupKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}
