package template

// TypeScript variants of the Express backend templates.

const serverEntryPlainTS = `import express, { Request, Response } from 'express';
import cors from 'cors';

const app = express();

app.use(cors());
app.use(express.json());

app.get('/', (req: Request, res: Response) => {
  res.json({ message: 'Welcome to the {{.ProjectName}} API' });
});

const PORT = process.env.PORT || 5000;

app.listen(PORT, () => {
  console.log('Server running on port ' + PORT);
});
`

const serverEntryMongoTS = `import 'dotenv/config';
import express, { Request, Response } from 'express';
import cors from 'cors';
import connectDB from './db/connect';
import userRoutes from './routes/userRoutes';

const app = express();

app.use(cors());
app.use(express.json());

app.get('/', (req: Request, res: Response) => {
  res.json({ message: 'Welcome to the {{.ProjectName}} API' });
});

app.use('/api/users', userRoutes);

const PORT = process.env.PORT || 5000;

const start = async (): Promise<void> => {
  await connectDB();
  app.listen(PORT, () => {
    console.log('Server running on port ' + PORT);
  });
};

start();
`

const serverEntryPostgresTS = `import 'dotenv/config';
import express, { Request, Response } from 'express';
import cors from 'cors';
import pool from './db/connect';
import userRoutes from './routes/userRoutes';

const app = express();

app.use(cors());
app.use(express.json());

app.get('/', (req: Request, res: Response) => {
  res.json({ message: 'Welcome to the {{.ProjectName}} API' });
});

app.use('/api/users', userRoutes);

const PORT = process.env.PORT || 5000;

const start = async (): Promise<void> => {
  await pool.query('SELECT 1');
  console.log('PostgreSQL connected');
  app.listen(PORT, () => {
    console.log('Server running on port ' + PORT);
  });
};

start().catch((error: Error) => {
  console.error('Failed to start server: ' + error.message);
  process.exit(1);
});
`

const databaseMongoTS = `import mongoose from 'mongoose';

const connectDB = async (): Promise<void> => {
  try {
    const conn = await mongoose.connect(process.env.MONGODB_URI as string);
    console.log('MongoDB connected: ' + conn.connection.host);
  } catch (error) {
    console.error('MongoDB connection failed: ' + (error as Error).message);
    process.exit(1);
  }
};

export default connectDB;
`

const databasePostgresTS = `import { Pool } from 'pg';

const pool = new Pool({
  host: process.env.PGHOST,
  port: Number(process.env.PGPORT),
  user: process.env.PGUSER,
  password: process.env.PGPASSWORD,
  database: process.env.PGDATABASE,
});

pool.on('error', (error: Error) => {
  console.error('Unexpected PostgreSQL error: ' + error.message);
  process.exit(1);
});

export default pool;
`

const modelMongoTS = `import mongoose, { Document, Schema } from 'mongoose';

export interface IUser extends Document {
  name: string;
  email: string;
}

const userSchema = new Schema<IUser>(
  {
    name: {
      type: String,
      required: true,
      trim: true,
    },
    email: {
      type: String,
      required: true,
      unique: true,
      lowercase: true,
    },
  },
  { timestamps: true }
);

export default mongoose.model<IUser>('User', userSchema);
`

const queriesPostgresTS = `export const createUsersTable =
  'CREATE TABLE IF NOT EXISTS users (' +
  '  id SERIAL PRIMARY KEY,' +
  '  name VARCHAR(100) NOT NULL,' +
  '  email VARCHAR(255) UNIQUE NOT NULL,' +
  '  password VARCHAR(255) NOT NULL,' +
  '  created_at TIMESTAMPTZ DEFAULT NOW()' +
  ')';

export const insertUser =
  'INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, name, email';

export const findUserByEmail = 'SELECT * FROM users WHERE email = $1';
`

const controllerMongoTS = `import { Request, Response } from 'express';
import User from '../models/User';

export const getUsers = async (req: Request, res: Response): Promise<void> => {
  try {
    const users = await User.find().sort({ createdAt: -1 });
    res.json(users);
  } catch (error) {
    res.status(500).json({ error: (error as Error).message });
  }
};

export const createUser = async (req: Request, res: Response): Promise<void> => {
  try {
    const user = await User.create(req.body);
    res.status(201).json(user);
  } catch (error) {
    res.status(400).json({ error: (error as Error).message });
  }
};
`

const controllerPostgresTS = `import { Request, Response } from 'express';
import bcrypt from 'bcryptjs';
import jwt from 'jsonwebtoken';
import pool from '../db/connect';
import { insertUser, findUserByEmail } from '../queries/userQueries';

export const register = async (req: Request, res: Response): Promise<void> => {
  try {
    const { name, email, password } = req.body;
    const hashed = await bcrypt.hash(password, 10);
    const result = await pool.query(insertUser, [name, email, hashed]);
    res.status(201).json(result.rows[0]);
  } catch (error) {
    res.status(400).json({ error: (error as Error).message });
  }
};

export const login = async (req: Request, res: Response): Promise<void> => {
  try {
    const { email, password } = req.body;
    const result = await pool.query(findUserByEmail, [email]);
    const user = result.rows[0];
    if (!user || !(await bcrypt.compare(password, user.password))) {
      res.status(401).json({ error: 'Invalid credentials' });
      return;
    }
    const token = jwt.sign({ id: user.id }, process.env.JWT_SECRET as string, {
      expiresIn: '1d',
    });
    res.json({ token });
  } catch (error) {
    res.status(500).json({ error: (error as Error).message });
  }
};
`

const routesMongoTS = `import { Router } from 'express';
import { getUsers, createUser } from '../controllers/userController';

const router = Router();

router.get('/', getUsers);
router.post('/', createUser);

export default router;
`

const routesPostgresTS = `import { Router } from 'express';
import { register, login } from '../controllers/userController';

const router = Router();

router.post('/register', register);
router.post('/login', login);

export default router;
`
