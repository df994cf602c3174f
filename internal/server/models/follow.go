package models

// FollowEdge is a directed relation: the follower sees the followee's posts
// in their timeline. At most one edge exists per ordered pair.
type FollowEdge struct {
	FollowerID int64
	FolloweeID int64
}
