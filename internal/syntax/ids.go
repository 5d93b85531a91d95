package syntax

type (
	FileID       uint32
	UnitID       uint32
	PortID       uint32
	ParamID      uint32
	DataTypeID   uint32
	MemberID     uint32
	DeclID       uint32
	InstID       uint32
	InstanceID   uint32
	ConnID       uint32
	ParamAssignID uint32
	StmtID       uint32
	ExprID       uint32
	RangeID      uint32
	ItemID       uint32
)

const (
	NoFileID        FileID        = 0
	NoUnitID        UnitID        = 0
	NoPortID        PortID        = 0
	NoParamID       ParamID       = 0
	NoDataTypeID    DataTypeID    = 0
	NoMemberID      MemberID      = 0
	NoDeclID        DeclID        = 0
	NoInstID        InstID        = 0
	NoInstanceID    InstanceID    = 0
	NoConnID        ConnID        = 0
	NoParamAssignID ParamAssignID = 0
	NoStmtID        StmtID        = 0
	NoExprID        ExprID        = 0
	NoRangeID       RangeID       = 0
	NoItemID        ItemID        = 0
)

func (id FileID) IsValid() bool        { return id != NoFileID }
func (id UnitID) IsValid() bool        { return id != NoUnitID }
func (id PortID) IsValid() bool        { return id != NoPortID }
func (id ParamID) IsValid() bool       { return id != NoParamID }
func (id DataTypeID) IsValid() bool    { return id != NoDataTypeID }
func (id MemberID) IsValid() bool      { return id != NoMemberID }
func (id DeclID) IsValid() bool        { return id != NoDeclID }
func (id InstID) IsValid() bool        { return id != NoInstID }
func (id InstanceID) IsValid() bool    { return id != NoInstanceID }
func (id ConnID) IsValid() bool        { return id != NoConnID }
func (id ParamAssignID) IsValid() bool { return id != NoParamAssignID }
func (id StmtID) IsValid() bool        { return id != NoStmtID }
func (id ExprID) IsValid() bool        { return id != NoExprID }
func (id RangeID) IsValid() bool       { return id != NoRangeID }
func (id ItemID) IsValid() bool        { return id != NoItemID }
