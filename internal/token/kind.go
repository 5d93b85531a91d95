package token

// Kind identifies the syntactic category of a token.
type Kind uint16

const (
	// Invalid marks a token the lexer could not classify.
	Invalid Kind = iota
	// EOF marks the end of the token stream.
	EOF
	// Unknown marks a single unrecognized character, kept as its own
	// token so the parser can skip it during recovery.
	Unknown

	Ident         // plain identifier
	EscapedIdent  // \identifier
	SystemIdent   // $identifier
	IntegerLit    // 42, 'h1F, 8'b1010
	RealLit       // 3.14, 1.5e10
	TimeLit       // 10ns, 1.5us
	StringLit     // "..."
	UnbasedUnsizedLit // '0 '1 'x 'z

	// Design-unit and structural keywords.
	ModuleKeyword
	EndModuleKeyword
	MacromoduleKeyword
	InterfaceKeyword
	EndInterfaceKeyword
	ProgramKeyword
	EndProgramKeyword
	PackageKeyword
	EndPackageKeyword
	PrimitiveKeyword
	EndPrimitiveKeyword
	ConfigKeyword
	EndConfigKeyword
	CheckerKeyword
	EndCheckerKeyword
	ClassKeyword
	EndClassKeyword
	GenerateKeyword
	EndGenerateKeyword
	GenVarKeyword

	// Ports / directions / nets.
	InputKeyword
	OutputKeyword
	InOutKeyword
	RefKeyword
	InterconnectKeyword
	ModPortKeyword
	WireKeyword
	WAndKeyword
	WOrKeyword
	TriKeyword
	Tri0Keyword
	Tri1Keyword
	TriAndKeyword
	TriOrKeyword
	TriRegKeyword
	UWireKeyword
	Supply0Keyword
	Supply1Keyword
	NetTypeKeyword
	VectoredKeyword
	ScalaredKeyword

	// Data types.
	LogicKeyword
	RegKeyword
	BitKeyword
	ByteKeyword
	ShortIntKeyword
	IntKeyword
	LongIntKeyword
	IntegerKeyword
	TimeKeyword
	ShortRealKeyword
	RealKeyword
	RealTimeKeyword
	StringKeyword
	CHandleKeyword
	EventKeyword
	VoidKeyword
	VirtualKeyword
	UntypedKeyword
	TypeKeyword
	TypedefKeyword
	StructKeyword
	UnionKeyword
	TaggedKeyword
	EnumKeyword
	PackedKeyword
	SignedKeyword
	UnsignedKeyword

	// Parameters / declarations.
	ParameterKeyword
	LocalParamKeyword
	SpecParamKeyword
	DefParamKeyword
	ConstKeyword
	VarKeyword
	AutomaticKeyword
	StaticKeyword
	LocalKeyword
	ProtectedKeyword
	ExternKeyword
	ImportKeyword
	ExportKeyword
	NewKeyword

	// Statement / procedural keywords.
	AlwaysKeyword
	AlwaysCombKeyword
	AlwaysFFKeyword
	AlwaysLatchKeyword
	InitialKeyword
	FinalKeyword
	ForceKeyword
	ReleaseKeyword
	AssignKeyword
	DeassignKeyword
	BeginKeyword
	EndKeyword
	ForkKeyword
	JoinKeyword
	JoinAnyKeyword
	JoinNoneKeyword
	IfKeyword
	ElseKeyword
	CaseKeyword
	CaseXKeyword
	CaseZKeyword
	EndCaseKeyword
	DefaultKeyword
	ForKeyword
	ForeachKeyword
	WhileKeyword
	DoKeyword
	RepeatKeyword
	ForeverKeyword
	BreakKeyword
	ContinueKeyword
	ReturnKeyword
	DisableKeyword
	WaitKeyword
	WaitOrderKeyword
	FunctionKeyword
	EndFunctionKeyword
	TaskKeyword
	EndTaskKeyword

	// Instantiation / generate.
	BindKeyword
	InstanceKeyword
	DesignKeyword
	CellKeyword
	LibraryKeyword
	LibListKeyword
	UseKeyword
	IncludeKeyword
	IncDirKeyword

	// Gate primitives.
	AndKeyword
	NandKeyword
	OrKeyword
	NorKeyword
	XorKeyword
	XnorKeyword
	NotKeyword
	BufKeyword
	BufIf0Keyword
	BufIf1Keyword
	NotIf0Keyword
	NotIf1Keyword
	Nmos_Keyword
	Pmos_Keyword
	Cmos_Keyword
	Rnmos_Keyword
	Rpmos_Keyword
	Rcmos_Keyword
	Tran_Keyword
	TranIf0Keyword
	TranIf1Keyword
	Rtran_Keyword
	RtranIf0Keyword
	RtranIf1Keyword
	Pull0Keyword
	Pull1Keyword
	PullDownKeyword
	PullUpKeyword
	HighZ0Keyword
	HighZ1Keyword
	Strong0Keyword
	Strong1Keyword
	Weak0Keyword
	Weak1Keyword
	LargeKeyword
	MediumKeyword
	SmallKeyword

	// Edges / events / timing.
	PosEdgeKeyword
	NegEdgeKeyword
	EdgeKeyword
	IffKeyword
	SpecifyKeyword
	EndSpecifyKeyword
	TimeUnitKeyword
	TimePrecisionKeyword

	// Assertions / clocking / sequences (accepted, deep checking is a
	// non-goal).
	AssertKeyword
	AssumeKeyword
	CoverKeyword
	CoverGroupKeyword
	EndGroupKeyword
	CoverPointKeyword
	CrossKeyword
	BinsKeyword
	BinsOfKeyword
	IgnoreBinsKeyword
	IllegalBinsKeyword
	SequenceKeyword
	EndSequenceKeyword
	PropertyKeyword
	EndPropertyKeyword
	ClockingKeyword
	EndClockingKeyword
	GlobalKeyword
	ExpectKeyword
	FirstMatchKeyword
	ThroughoutKeyword
	WithinKeyword
	IntersectKeyword
	BeforeKeyword
	ThisKeyword
	NullKeyword
	SuperKeyword
	ExtendsKeyword
	ImplementsKeyword
	PureKeyword
	RandKeyword
	RandCKeyword
	RandCaseKeyword
	RandSequenceKeyword
	ConstraintKeyword
	SolveKeyword
	DistKeyword
	InsideKeyword
	MatchesKeyword
	UniqueKeyword
	Unique0Keyword
	PriorityKeyword
	SoftKeyword
	AliasKeyword
	AcceptOnKeyword
	RejectOnKeyword
	SyncAcceptOnKeyword
	SyncRejectOnKeyword
	EventuallyKeyword
	NextTimeKeyword
	SAlwaysKeyword
	SEventuallyKeyword
	SNextTimeKeyword
	SUntilKeyword
	SUntilWithKeyword
	UntilKeyword
	UntilWithKeyword
	OneStepKeyword
	StrongKeyword
	TableKeyword
	EndTableKeyword
	NoShowCancelledKeyword
	ShowCancelledKeyword
	PulseStyleOnDetectKeyword
	PulseStyleOnEventKeyword
	RestrictKeyword
	WildcardKeyword
	ContextKeyword

	// Operators / punctuation.
	Plus              // +
	PlusPlus          // ++
	PlusColon         // +:
	PlusEqual         // +=
	Minus             // -
	MinusMinus        // --
	MinusColon        // -:
	MinusEqual        // -=
	MinusArrow        // ->
	MinusDoubleArrow  // -->
	Star              // *
	StarStar          // **
	StarEqual         // *=
	StarArrow         // *>
	Slash             // /
	SlashEqual        // /=
	Percent           // %
	PercentEqual      // %=
	Equals            // =
	DoubleEquals      // ==
	DoubleEqualsQuestion // ==?
	TripleEquals      // ===
	EqualsArrow       // =>
	Exclamation       // !
	ExclamationEquals // !=
	ExclamationEqualsQuestion // !=?
	ExclamationDoubleEquals   // !==
	LessThan          // <
	LessThanEquals    // <=
	LessThanMinusArrow // <->
	GreaterThan       // >
	GreaterThanEquals // >=
	LeftShift         // <<
	LeftShiftEqual    // <<=
	TripleLeftShift   // <<<
	TripleLeftShiftEqual // <<<=
	RightShift        // >>
	RightShiftEqual   // >>=
	TripleRightShift  // >>>
	TripleRightShiftEqual // >>>=
	And               // &
	DoubleAnd         // &&
	TripleAnd         // &&&
	AndEqual          // &=
	Or                // |
	DoubleOr          // ||
	OrEqual           // |=
	OrMinusArrow      // |->
	OrMinusDoubleArrow // |=>
	OrEqualsArrow     // reserved alias, not produced by the lexer
	Tilde             // ~
	TildeAnd          // ~&
	TildeOr           // ~|
	TildeXor          // ~^
	Xor               // ^
	XorTilde          // ^~
	XorEqual          // ^=
	Question          // ?
	Colon             // :
	ColonEquals       // :=
	ColonSlash        // :/
	DoubleColon       // ::
	Semicolon         // ;
	Comma             // ,
	Dot               // .
	DotStar           // .*
	OpenParenthesis   // (
	CloseParenthesis  // )
	OpenParenthesisStar // (*
	StarCloseParenthesis // *)
	OpenBrace         // {
	CloseBrace        // }
	ApostropheOpenBrace // '{
	OpenBracket       // [
	CloseBracket      // ]
	Apostrophe        // '
	At                // @
	AtStar            // @*
	DoubleAt          // @@
	Dollar            // $
	Hash              // #
	DoubleHash        // ##
	HashMinusHash     // #-#
	HashEqualsHash    // #=#

	// Compiler-directive tokens (produced by the preprocessor, consumed
	// before the parser sees them except for a handful passed through
	// unexpanded, e.g. inside `ifdef bodies during macro-arg capture).
	Directive       // `foo
	MacroUsage      // `FOO or `FOO(args)
	MacroQuote      // `"
	MacroEscapedQuote // `\`"
	MacroPaste      // ``
)
