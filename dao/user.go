package dao

import (
	"context"

	"gorm.io/gorm"

	"Moodring/models"
)

var _ UserReader = (*Users)(nil)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (u *Users) FindUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := u.FindById(ctx, id)
	return user, storeErr("user.find", err)
}

// FindUsers 批量查询，缺失的 id 不出现在结果中
func (u *Users) FindUsers(ctx context.Context, ids []uint64) (map[uint64]*models.User, error) {
	out := make(map[uint64]*models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var users []*models.User
	if err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, storeErr("user.find_many", err)
	}
	for _, user := range users {
		out[user.ID] = user
	}
	return out, nil
}

// GetOrCreate 按用户名取用户，不存在时以给定 id 创建
func (u *Users) GetOrCreate(ctx context.Context, id uint64, username string) (*models.User, error) {
	var user models.User
	err := u.Db.WithContext(ctx).
		Where(models.User{Username: username}).
		Attrs(models.User{ID: id}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, storeErr("user.get_or_create", err)
	}
	return &user, nil
}
