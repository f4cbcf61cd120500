package postgres

const (
	// An empty result means the id was already taken
	createVideo = `INSERT INTO videos (id, name, views, likes)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING
RETURNING id, name, views, likes`

	findVideoByID = `SELECT id, name, views, likes FROM videos WHERE id = $1`

	findAllVideos = `SELECT id, name, views, likes FROM videos ORDER BY id`

	updateVideo = `UPDATE videos
SET name  = COALESCE($1::text, name),
    views = COALESCE($2::bigint, views),
    likes = COALESCE($3::bigint, likes)
WHERE id = $4
RETURNING id, name, views, likes`

	deleteVideo = `DELETE FROM videos WHERE id = $1 RETURNING id, name, views, likes`
)
