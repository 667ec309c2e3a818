package dto

// UserResponse is the author block embedded in every board post.
type UserResponse struct {
	UID       int64  `json:"uid"`
	UserName  string `json:"userName"`
	UserPic   string `json:"userPic"`
	UserTh    int    `json:"userTh"`
	Session   string `json:"session,omitempty"`
	UserEmail string `json:"userEmail"`
}

type BoardPost struct {
	BID           BoardID      `json:"bid"`
	BoardTitle    string       `json:"boardTitle"`
	BoardContents string       `json:"boardContents"`
	BoardView     int          `json:"boardView"`
	BoardCategory string       `json:"boardCategory"`
	Author        UserResponse `json:"userResponseDto"`
	CreatedDate   Timestamp    `json:"createdDate"`
	Thumbnail     string       `json:"thumbNaile,omitempty"`
}

// BoardPageResponse is one page of GET /board/list.
type BoardPageResponse struct {
	Contents      []BoardPost `json:"contents"`
	TotalPages    int         `json:"totalPages"`
	PageSize      int         `json:"pageSize,omitempty"`
	TotalElements int64       `json:"totalElements,omitempty"`
	First         bool        `json:"first,omitempty"`
	Last          bool        `json:"last,omitempty"`
	Empty         bool        `json:"empty,omitempty"`
	Message       string      `json:"message,omitempty"`
}

// UpdateBoardDTO is the body of PUT /board/updateBoard/{id}.
type UpdateBoardDTO struct {
	BoardTitle    string `json:"boardTitle"`
	BoardContents string `json:"boardContents"`
	BoardCategory string `json:"boardCategory"`
}

type UserInfoResponse struct {
	Data struct {
		UserEmail string `json:"userEmail"`
	} `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
