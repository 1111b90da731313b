package i18n

var messagesEN = map[string]string{
	// ========== Diagnostic prefixes ==========
	PrefixLexical:  "Lexical Error at line %d: ",
	PrefixParse:    "Parse Error at line %d: ",
	PrefixSemantic: "Semantic Error at line %d: ",

	// ========== Lexer ==========
	ErrInvalidChar:      "Invalid character '%s'",
	ErrInvalidNumber:    "Invalid number format",
	ErrConsecutiveOps:   "Consecutive operators not allowed",
	ErrInvalidIdent:     "Invalid identifier",
	ErrUnexpectedLexeme: "Unexpected token '%s'",

	// ========== Parser ==========
	ErrUnexpectedToken:   "Unexpected token '%s'",
	ErrMissingSemicolon:  "Missing semicolon after '%s'",
	ErrMissingIdentifier: "Expected identifier after '%s'",
	ErrMissingEquals:     "Expected '=' after '%s'",
	ErrInvalidExpression: "Invalid expression after '%s'",
	ErrMissingLParen:     "Missing '(' after '%s'",
	ErrMissingRParen:     "Missing ')' after '%s'",
	ErrMissingCondition:  "Missing condition after '%s'",
	ErrMissingBlock:      "Missing block braces after '%s'",
	ErrInvalidOperator:   "Invalid operator '%s'",
	ErrFunctionCall:      "Function call error near '%s'",

	// ========== Semantic ==========
	ErrUndeclaredVar:     "Undeclared variable '%s'",
	ErrRedeclaredVar:     "Variable '%s' already declared in this scope",
	ErrTypeMismatch:      "Type mismatch involving '%s'",
	WarnUninitializedVar: "Variable '%s' may be used uninitialized",
	ErrInvalidOperation:  "Invalid operation involving '%s'",

	// ========== Diagnostic summary ==========
	DiagFoundErrors:   "found %d error(s)",
	DiagFoundWarnings: "found %d warning(s)",

	// ========== Suggestions ==========
	// Variable related
	SuggestDeclareBeforeUse: "Declare the variable first: `int %s;`",
	SuggestCheckSpelling:    "Check if the name '%s' is spelled correctly",
	SuggestRenameVariable:   "Use a different name, or move the declaration into a nested block to shadow the outer one",
	SuggestAssignBeforeUse:  "Assign a value before reading it: `%s = 0;`",

	// Syntax related
	SuggestAddSemicolon:   "Statements end with ';'",
	SuggestDeclareForm:    "A declaration has the form `int name;`",
	SuggestParenthesize:   "Conditions must be parenthesized: `if (x > 0) ...`",
	SuggestCloseBlock:     "Close the block with '}'",
	SuggestAssignForm:     "Assignments have the form `name = expression;`",
	SuggestOnlyFactorial:  "The only callable function is `factorial(expression)`",
	SuggestStatementForms: "A statement starts with 'int', an identifier, 'if', 'while', 'repeat', 'print', or '{'",

	// Lexical related
	SuggestRemoveCharacter: "Remove the character; it is not part of the language",
}
