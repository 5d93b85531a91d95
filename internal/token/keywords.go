package token

// keywords maps the LRM's reserved words to their Kind. Lookup is
// case-sensitive; SystemVerilog keywords are always lowercase.
var keywords = map[string]Kind{
	"module":         ModuleKeyword,
	"endmodule":      EndModuleKeyword,
	"macromodule":    MacromoduleKeyword,
	"interface":      InterfaceKeyword,
	"endinterface":   EndInterfaceKeyword,
	"program":        ProgramKeyword,
	"endprogram":     EndProgramKeyword,
	"package":        PackageKeyword,
	"endpackage":     EndPackageKeyword,
	"primitive":      PrimitiveKeyword,
	"endprimitive":   EndPrimitiveKeyword,
	"config":         ConfigKeyword,
	"endconfig":      EndConfigKeyword,
	"checker":        CheckerKeyword,
	"endchecker":     EndCheckerKeyword,
	"class":          ClassKeyword,
	"endclass":       EndClassKeyword,
	"generate":       GenerateKeyword,
	"endgenerate":    EndGenerateKeyword,
	"genvar":         GenVarKeyword,

	"input":         InputKeyword,
	"output":        OutputKeyword,
	"inout":         InOutKeyword,
	"ref":           RefKeyword,
	"interconnect":  InterconnectKeyword,
	"modport":       ModPortKeyword,
	"wire":          WireKeyword,
	"wand":          WAndKeyword,
	"wor":           WOrKeyword,
	"tri":           TriKeyword,
	"tri0":          Tri0Keyword,
	"tri1":          Tri1Keyword,
	"triand":        TriAndKeyword,
	"trior":         TriOrKeyword,
	"trireg":        TriRegKeyword,
	"uwire":         UWireKeyword,
	"supply0":       Supply0Keyword,
	"supply1":       Supply1Keyword,
	"nettype":       NetTypeKeyword,
	"vectored":      VectoredKeyword,
	"scalared":      ScalaredKeyword,

	"logic":     LogicKeyword,
	"reg":       RegKeyword,
	"bit":       BitKeyword,
	"byte":      ByteKeyword,
	"shortint":  ShortIntKeyword,
	"int":       IntKeyword,
	"longint":   LongIntKeyword,
	"integer":   IntegerKeyword,
	"time":      TimeKeyword,
	"shortreal": ShortRealKeyword,
	"real":      RealKeyword,
	"realtime":  RealTimeKeyword,
	"string":    StringKeyword,
	"chandle":   CHandleKeyword,
	"event":     EventKeyword,
	"void":      VoidKeyword,
	"virtual":   VirtualKeyword,
	"untyped":   UntypedKeyword,
	"type":      TypeKeyword,
	"typedef":   TypedefKeyword,
	"struct":    StructKeyword,
	"union":     UnionKeyword,
	"tagged":    TaggedKeyword,
	"enum":      EnumKeyword,
	"packed":    PackedKeyword,
	"signed":    SignedKeyword,
	"unsigned":  UnsignedKeyword,

	"parameter":  ParameterKeyword,
	"localparam": LocalParamKeyword,
	"specparam":  SpecParamKeyword,
	"defparam":   DefParamKeyword,
	"const":      ConstKeyword,
	"var":        VarKeyword,
	"automatic":  AutomaticKeyword,
	"static":     StaticKeyword,
	"local":      LocalKeyword,
	"protected":  ProtectedKeyword,
	"extern":     ExternKeyword,
	"import":     ImportKeyword,
	"export":     ExportKeyword,
	"new":        NewKeyword,

	"always":      AlwaysKeyword,
	"always_comb": AlwaysCombKeyword,
	"always_ff":   AlwaysFFKeyword,
	"always_latch": AlwaysLatchKeyword,
	"initial":     InitialKeyword,
	"final":       FinalKeyword,
	"force":       ForceKeyword,
	"release":     ReleaseKeyword,
	"assign":      AssignKeyword,
	"deassign":    DeassignKeyword,
	"begin":       BeginKeyword,
	"end":         EndKeyword,
	"fork":        ForkKeyword,
	"join":        JoinKeyword,
	"join_any":    JoinAnyKeyword,
	"join_none":   JoinNoneKeyword,
	"if":          IfKeyword,
	"else":        ElseKeyword,
	"case":        CaseKeyword,
	"casex":       CaseXKeyword,
	"casez":       CaseZKeyword,
	"endcase":     EndCaseKeyword,
	"default":     DefaultKeyword,
	"for":         ForKeyword,
	"foreach":     ForeachKeyword,
	"while":       WhileKeyword,
	"do":          DoKeyword,
	"repeat":      RepeatKeyword,
	"forever":     ForeverKeyword,
	"break":       BreakKeyword,
	"continue":    ContinueKeyword,
	"return":      ReturnKeyword,
	"disable":     DisableKeyword,
	"wait":        WaitKeyword,
	"wait_order":  WaitOrderKeyword,
	"function":    FunctionKeyword,
	"endfunction": EndFunctionKeyword,
	"task":        TaskKeyword,
	"endtask":     EndTaskKeyword,

	"bind":     BindKeyword,
	"instance": InstanceKeyword,
	"design":   DesignKeyword,
	"cell":     CellKeyword,
	"library":  LibraryKeyword,
	"liblist":  LibListKeyword,
	"use":      UseKeyword,
	"include":  IncludeKeyword,
	"incdir":   IncDirKeyword,

	"and":     AndKeyword,
	"nand":    NandKeyword,
	"or":      OrKeyword,
	"nor":     NorKeyword,
	"xor":     XorKeyword,
	"xnor":    XnorKeyword,
	"not":     NotKeyword,
	"buf":     BufKeyword,
	"bufif0":  BufIf0Keyword,
	"bufif1":  BufIf1Keyword,
	"notif0":  NotIf0Keyword,
	"notif1":  NotIf1Keyword,
	"nmos":    Nmos_Keyword,
	"pmos":    Pmos_Keyword,
	"cmos":    Cmos_Keyword,
	"rnmos":   Rnmos_Keyword,
	"rpmos":   Rpmos_Keyword,
	"rcmos":   Rcmos_Keyword,
	"tran":    Tran_Keyword,
	"tranif0": TranIf0Keyword,
	"tranif1": TranIf1Keyword,
	"rtran":   Rtran_Keyword,
	"rtranif0": RtranIf0Keyword,
	"rtranif1": RtranIf1Keyword,
	"pull0":     Pull0Keyword,
	"pull1":     Pull1Keyword,
	"pulldown":  PullDownKeyword,
	"pullup":    PullUpKeyword,
	"highz0":    HighZ0Keyword,
	"highz1":    HighZ1Keyword,
	"strong0":   Strong0Keyword,
	"strong1":   Strong1Keyword,
	"weak0":     Weak0Keyword,
	"weak1":     Weak1Keyword,
	"large":     LargeKeyword,
	"medium":    MediumKeyword,
	"small":     SmallKeyword,

	"posedge": PosEdgeKeyword,
	"negedge": NegEdgeKeyword,
	"edge":    EdgeKeyword,
	"iff":     IffKeyword,
	"specify": SpecifyKeyword,
	"endspecify": EndSpecifyKeyword,
	"timeunit":      TimeUnitKeyword,
	"timeprecision": TimePrecisionKeyword,

	"assert":       AssertKeyword,
	"assume":       AssumeKeyword,
	"cover":        CoverKeyword,
	"covergroup":   CoverGroupKeyword,
	"endgroup":     EndGroupKeyword,
	"coverpoint":   CoverPointKeyword,
	"cross":        CrossKeyword,
	"bins":         BinsKeyword,
	"binsof":       BinsOfKeyword,
	"ignore_bins":  IgnoreBinsKeyword,
	"illegal_bins": IllegalBinsKeyword,
	"sequence":     SequenceKeyword,
	"endsequence":  EndSequenceKeyword,
	"property":     PropertyKeyword,
	"endproperty":  EndPropertyKeyword,
	"clocking":     ClockingKeyword,
	"endclocking":  EndClockingKeyword,
	"global":       GlobalKeyword,
	"expect":       ExpectKeyword,
	"first_match":  FirstMatchKeyword,
	"throughout":   ThroughoutKeyword,
	"within":       WithinKeyword,
	"intersect":    IntersectKeyword,
	"before":       BeforeKeyword,
	"this":         ThisKeyword,
	"null":         NullKeyword,
	"super":        SuperKeyword,
	"extends":      ExtendsKeyword,
	"implements":   ImplementsKeyword,
	"pure":         PureKeyword,
	"rand":         RandKeyword,
	"randc":        RandCKeyword,
	"randcase":     RandCaseKeyword,
	"randsequence": RandSequenceKeyword,
	"constraint":   ConstraintKeyword,
	"solve":        SolveKeyword,
	"dist":         DistKeyword,
	"inside":       InsideKeyword,
	"matches":      MatchesKeyword,
	"unique":       UniqueKeyword,
	"unique0":      Unique0Keyword,
	"priority":     PriorityKeyword,
	"soft":         SoftKeyword,
	"alias":        AliasKeyword,
	"accept_on":      AcceptOnKeyword,
	"reject_on":      RejectOnKeyword,
	"sync_accept_on": SyncAcceptOnKeyword,
	"sync_reject_on": SyncRejectOnKeyword,
	"eventually":     EventuallyKeyword,
	"nexttime":       NextTimeKeyword,
	"s_always":       SAlwaysKeyword,
	"s_eventually":   SEventuallyKeyword,
	"s_nexttime":     SNextTimeKeyword,
	"s_until":        SUntilKeyword,
	"s_until_with":   SUntilWithKeyword,
	"until":          UntilKeyword,
	"until_with":     UntilWithKeyword,
	"1step":          OneStepKeyword,
	"strong":         StrongKeyword,
	"table":          TableKeyword,
	"endtable":       EndTableKeyword,
	"noshowcancelled": NoShowCancelledKeyword,
	"showcancelled":   ShowCancelledKeyword,
	"pulsestyle_ondetect": PulseStyleOnDetectKeyword,
	"pulsestyle_onevent":  PulseStyleOnEventKeyword,
	"restrict":            RestrictKeyword,
	"wildcard":            WildcardKeyword,
	"context":             ContextKeyword,
}

// LookupKeyword reports the Kind for ident if it is a reserved word.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
