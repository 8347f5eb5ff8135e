package repoargs

const (
	UserRepoName    = "user"
	MentorRepoName  = "mentor"
	BookingRepoName = "booking"
	WalletRepoName  = "wallet"
)
