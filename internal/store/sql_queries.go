package store

const (
	createFolder = `INSERT INTO folders (owner_id, name)
    VALUES ($1, $2)
    RETURNING id, owner_id, name, created_at, updated_at;`

	getFolder = `SELECT id, owner_id, name, created_at, updated_at
    FROM folders
    WHERE id = $1 AND owner_id = $2;`

	renameFolder = `UPDATE folders
    SET name = $1, updated_at = now()
    WHERE id = $2 AND owner_id = $3;`

	// Folder deletion runs in a transaction: dependent prompts are unfiled
	// first, then the folder row is removed. Both statements commit together
	// or not at all.
	clearFolderReferences = `UPDATE prompts
    SET folder_id = NULL, updated_at = now()
    WHERE folder_id = $1;`

	deleteFolder = `DELETE FROM folders
    WHERE id = $1 AND owner_id = $2;`

	folderExists = `SELECT EXISTS (SELECT 1 FROM folders WHERE id = $1 AND owner_id = $2);`

	createPrompt = `INSERT INTO prompts (owner_id, folder_id, name, description, content)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, owner_id, folder_id, name, description, content, created_at, updated_at;`

	movePrompt = `UPDATE prompts
    SET folder_id = $1, updated_at = now()
    WHERE id = $2 AND owner_id = $3;`

	deletePrompt = `DELETE FROM prompts
    WHERE id = $1 AND owner_id = $2;`

	deleteAllPrompts = `DELETE FROM prompts;`
)
