package kids

// MentorshipState はメンターとのマッチングに向けた進行状態を表す閉じた列挙型。
// DBのkids.mentorship列には文字列としてそのまま保存される。
type MentorshipState string

const (
	// MentorshipNotEnoughPoints はポイントがマッチング基準に達していない初期状態。
	MentorshipNotEnoughPoints MentorshipState = "not_enough_points"
	// MentorshipUninitialized はポイント基準を満たしたがまだ希望を出していない状態。
	MentorshipUninitialized MentorshipState = "uninitialized"
	// MentorshipWaiting はマッチングを希望して待機している状態。
	MentorshipWaiting MentorshipState = "waiting"
	// MentorshipMentored はメンターとマッチング済みの終端状態。
	// 現状この状態に遷移させるエンドポイントは存在しない。
	MentorshipMentored MentorshipState = "mentored"
)

// mentorshipRequiredPoints はマッチング基準となるポイントの閾値。
const mentorshipRequiredPoints = 1000

// mentorshipOrder は状態の前進順序。遷移はこの順序を進む方向にのみ許可される。
var mentorshipOrder = []MentorshipState{
	MentorshipNotEnoughPoints,
	MentorshipUninitialized,
	MentorshipWaiting,
	MentorshipMentored,
}

// rank は前進順序上の位置を返す。未知の状態は-1。
func (s MentorshipState) rank() int {
	for i, st := range mentorshipOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Advance はtargetへの前進遷移を試み、遷移後の状態を返す。
// 後退する遷移（および同一状態への遷移）は無視して現状態を維持する。
// ポイントが後から閾値を下回っても状態が戻らないのはこの性質による。
func (s MentorshipState) Advance(target MentorshipState) MentorshipState {
	if target.rank() > s.rank() {
		return target
	}
	return s
}

// mentorshipAfterPoints はポイント残高の更新後の状態を返す。
// 閾値到達時にnot_enough_pointsからuninitializedへ自動前進する。
// それ以外の状態は残高にかかわらず維持される。
func mentorshipAfterPoints(current MentorshipState, points int64) MentorshipState {
	if current == MentorshipNotEnoughPoints && points >= mentorshipRequiredPoints {
		return current.Advance(MentorshipUninitialized)
	}
	return current
}
