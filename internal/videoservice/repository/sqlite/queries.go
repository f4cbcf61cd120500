package sqlite

const (
	createVideo = `INSERT INTO videos (id, name, views, likes)
VALUES (?, ?, ?, ?)
RETURNING id, name, views, likes`

	findVideoByID = `SELECT id, name, views, likes FROM videos WHERE id = ?`

	findAllVideos = `SELECT id, name, views, likes FROM videos ORDER BY id`

	// COALESCE keeps the stored value for every field passed as NULL
	updateVideo = `UPDATE videos
SET name  = COALESCE(?, name),
    views = COALESCE(?, views),
    likes = COALESCE(?, likes)
WHERE id = ?
RETURNING id, name, views, likes`

	deleteVideo = `DELETE FROM videos WHERE id = ? RETURNING id, name, views, likes`
)
